/*Command block-align runs the adaptive banded aligner over a file of
  sequence pairs (or PSSM records) and prints one score per line.

  By default it reads a two-line-per-record reference/query text file (see
  encoding/pairtext.ReadPairs) from stdin or -in, scores each pair with
  either the BLOSUM62 or NW1 matrix, and prints "score\tqueryEnd\trefEnd"
  per record. -pssm switches to position-specific scoring
  (encoding/pairtext.ReadPSSM): each record's query is scored against its
  own per-position profile instead of -matrix. An input path ending in .gz
  is transparently decompressed; -in - (the default) reads stdin.

  -query-fasta together with -ref-fasta switches to a third mode: align,
  for every sequence name present in both files, the query record against
  the same-named reference record. -ref-fasta-index names a .fai index for
  -ref-fasta, which avoids reading the whole reference into memory in
  exchange for random-access seeks per lookup — worthwhile once the
  reference is a full chromosome or genome rather than a handful of short
  records.

  Usage:
    block-align -in pairs.txt -matrix blosum62 -gap-open -11 -gap-extend -1
    block-align -pssm pairs.pssm.gz -gap-open -10 -gap-extend -1 -trace
    block-align -query-fasta reads.fa -ref-fasta genome.fa -ref-fasta-index genome.fa.fai
*/
package main

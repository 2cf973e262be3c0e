package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/TheDegenerateDev5150/block-aligner/block"
	"github.com/TheDegenerateDev5150/block-aligner/encoding/fasta"
	"github.com/TheDegenerateDev5150/block-aligner/encoding/pairtext"
	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
	"github.com/TheDegenerateDev5150/block-aligner/simdband"
)

var (
	inPath      = flag.String("in", "-", "Input path; '-' reads stdin. A .gz suffix is transparently decompressed")
	pssmPath    = flag.String("pssm", "", "If set, read PSSM-format records from this path instead of -in pair-text records")
	queryFasta  = flag.String("query-fasta", "", "If set (with -ref-fasta), align same-named records between the two FASTA files instead of -in/-pssm")
	refFasta    = flag.String("ref-fasta", "", "Reference FASTA path; see -query-fasta")
	refFastaIdx = flag.String("ref-fasta-index", "", "Optional .fai index for -ref-fasta; uses random-access lookups instead of reading the whole reference into memory")
	matrix      = flag.String("matrix", "blosum62", "Substitution matrix for pair-text records: 'blosum62' or 'nw1'")
	gapOpen     = flag.Int("gap-open", -11, "Gap-open penalty (<= 0, <= gap-extend)")
	gapExt      = flag.Int("gap-extend", -1, "Gap-extend penalty (<= 0)")
	minSize     = flag.Int("min-size", 32, "Starting band width; rounded up to a multiple of the lane count")
	maxSize     = flag.Int("max-size", 256, "Maximum band width the aligner may grow to")
	xDrop       = flag.Int("x-drop", 0, "X-drop threshold; 0 runs a full global alignment instead")
	padding     = flag.Int("padding", 64, "Sentinel padding on each sequence buffer")
	trace       = flag.Bool("trace", false, "Print a CIGAR string alongside each score")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

// gzipFile pairs a gzip.Reader with the underlying os.File so both get
// closed together.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipFile{Reader: gz, f: f}, nil
	}
	return f, nil
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()
	flag.Parse()

	gaps := scoring.Gaps{Open: int16(*gapOpen), Extend: int16(*gapExt)}
	if err := gaps.Validate(); err != nil {
		log.Fatalf("block-align: %v", err)
	}

	if *queryFasta != "" || *refFasta != "" {
		if *queryFasta == "" || *refFasta == "" {
			log.Fatalf("block-align: -query-fasta and -ref-fasta must be set together")
		}
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		if err := runFastaPair(*queryFasta, *refFasta, w, gaps); err != nil {
			log.Fatalf("block-align: %v", err)
		}
		return
	}

	path := *inPath
	if *pssmPath != "" {
		path = *pssmPath
	}
	in, err := openInput(path)
	if err != nil {
		log.Fatalf("block-align: opening %q: %v", path, err)
	}
	defer in.Close()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	if *pssmPath != "" {
		if err := runPSSM(in, w, gaps); err != nil {
			log.Fatalf("block-align: %v", err)
		}
		return
	}
	if err := runPairs(in, w, gaps); err != nil {
		log.Fatalf("block-align: %v", err)
	}
}

func substitutionMatrix() (*scoring.Matrix, error) {
	switch *matrix {
	case "blosum62":
		return scoring.BLOSUM62, nil
	case "nw1":
		return scoring.NW1, nil
	default:
		return nil, errors.Errorf("unknown -matrix %q (want blosum62 or nw1)", *matrix)
	}
}

func runPairs(in io.Reader, w io.Writer, gaps scoring.Gaps) error {
	m, err := substitutionMatrix()
	if err != nil {
		return err
	}
	pairs, err := pairtext.ReadPairs(in)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		query, err := seqio.FromBytes(pair.Query, *padding, simdband.L)
		if err != nil {
			return err
		}
		reference, err := seqio.FromBytes(pair.Reference, *padding, simdband.L)
		if err != nil {
			return err
		}

		ba, err := block.New(*trace, *xDrop > 0, query.Len(), reference.Len(), *maxSize)
		if err != nil {
			return err
		}
		if err := ba.Align(query, reference, m, gaps, *minSize, *maxSize, int32(*xDrop)); err != nil {
			return err
		}
		if err := printResult(w, ba); err != nil {
			return err
		}
	}
	return nil
}

func runPSSM(in io.Reader, w io.Writer, gaps scoring.Gaps) error {
	pairs, err := pairtext.ReadPSSM(in, *padding, gaps.Open, gaps.Extend)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		ba, err := block.New(*trace, *xDrop > 0, pair.Query.Len(), pair.Profile.RefLen(), *maxSize)
		if err != nil {
			return err
		}
		if err := ba.AlignProfile(pair.Query, pair.Profile, *minSize, *maxSize, int32(*xDrop)); err != nil {
			return err
		}
		if err := printResult(w, ba); err != nil {
			return err
		}
	}
	return nil
}

// runFastaPair aligns, for every sequence name present in both FASTA files,
// the query file's record against the reference file's same-named record.
func runFastaPair(queryPath, refPath string, w io.Writer, gaps scoring.Gaps) error {
	m, err := substitutionMatrix()
	if err != nil {
		return err
	}

	qf, err := openFasta(queryPath)
	if err != nil {
		return err
	}
	rf, err := openReferenceFasta(refPath)
	if err != nil {
		return err
	}

	for _, name := range qf.SeqNames() {
		refLen, err := rf.Len(name)
		if err != nil {
			continue // not present in the reference file; skip
		}
		queryLen, err := qf.Len(name)
		if err != nil {
			return err
		}

		querySeq, err := qf.Get(name, 0, queryLen)
		if err != nil {
			return err
		}
		refSeq, err := rf.Get(name, 0, refLen)
		if err != nil {
			return err
		}

		query, err := seqio.FromStr(querySeq, *padding, simdband.L)
		if err != nil {
			return err
		}
		reference, err := seqio.FromStr(refSeq, *padding, simdband.L)
		if err != nil {
			return err
		}

		ba, err := block.New(*trace, *xDrop > 0, query.Len(), reference.Len(), *maxSize)
		if err != nil {
			return err
		}
		if err := ba.Align(query, reference, m, gaps, *minSize, *maxSize, int32(*xDrop)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t", name); err != nil {
			return err
		}
		if err := printResult(w, ba); err != nil {
			return err
		}
	}
	return nil
}

func openFasta(path string) (fasta.Fasta, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return fasta.New(r, fasta.OptClean)
}

// openReferenceFasta opens the reference FASTA for -query-fasta/-ref-fasta.
// With -ref-fasta-index set it uses fasta.NewIndexed for random-access
// lookups against an unopened-into-memory file (the path a large reference
// genome needs); otherwise it falls back to the eager, whole-file openFasta.
func openReferenceFasta(path string) (fasta.Fasta, error) {
	if *refFastaIdx == "" {
		return openFasta(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	idx, err := openInput(*refFastaIdx)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer idx.Close()
	return fasta.NewIndexed(f, idx)
}

func printResult(w io.Writer, ba *block.Block) error {
	res := ba.Res()
	if _, err := fmt.Fprintf(w, "%d\t%d\t%d", res.Score, res.QueryIdx, res.RefIdx); err != nil {
		return err
	}
	if *trace {
		tr, err := ba.Trace()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\t%s", tr.Cigar(res.QueryIdx, res.RefIdx)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

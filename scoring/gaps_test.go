package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDegenerateDev5150/block-aligner/scoring"
)

func TestGapsValidate(t *testing.T) {
	assert.NoError(t, scoring.Gaps{Open: -11, Extend: -1}.Validate())
	assert.NoError(t, scoring.Gaps{Open: -1, Extend: -1}.Validate())
	assert.NoError(t, scoring.Gaps{Open: 0, Extend: 0}.Validate())

	assert.Error(t, scoring.Gaps{Open: -1, Extend: -11}.Validate(), "open must be at least as negative as extend")
	assert.Error(t, scoring.Gaps{Open: 1, Extend: -1}.Validate())
	assert.Error(t, scoring.Gaps{Open: -1, Extend: 1}.Validate())
}

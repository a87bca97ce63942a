package pseudosem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_PaddingEquality(t *testing.T) {
	assert.True(t, Parse("1.2").Equal(Parse("1.2.0")))
}

func TestCompare_NumericNotLexical(t *testing.T) {
	assert.True(t, Parse("1.10").Compare(Parse("1.2")) > 0)
}

func TestCompare_AlphabeticSuffix(t *testing.T) {
	assert.True(t, Parse("1.0a").LessThan(Parse("1.0b")))
}

func TestCompare_DifferentSeparators(t *testing.T) {
	assert.True(t, Parse("1-2-3").Equal(Parse("1.2.3")))
	assert.True(t, Parse("1_2_3").Equal(Parse("1.2.3")))
}

func TestCompareOp(t *testing.T) {
	v1 := Parse("1.2.3")
	v2 := Parse("1.0.0")

	assert.True(t, CompareOp(v1, v2, ">="))
	assert.True(t, CompareOp(v1, v2, ">"))
	assert.False(t, CompareOp(v1, v2, "<"))
	assert.True(t, CompareOp(v1, v1, "=="))
	assert.True(t, CompareOp(v1, v2, "!="))
}

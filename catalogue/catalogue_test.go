package catalogue_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aruuz-ai/go-bahr/catalogue"
)

func TestDistinctNamesAreOneFewerThanIndicesWhenOneVariantPairExists(t *testing.T) {
	c := catalogue.New()
	assert.Equal(t, c.Len(), len(c.Names())+1)
}

func TestNewDoesNotPanicOnRealTables(t *testing.T) {
	assert.NotPanics(t, func() {
		catalogue.New()
	})
}

func TestIndexByNameFindsVariants(t *testing.T) {
	c := catalogue.New()
	idx := c.IndexByName("بحر مضارع مثمن اخرب")
	assert.Len(t, idx, 2)
}

func TestPatternAlphabetOnlyContainsSymbolSet(t *testing.T) {
	c := catalogue.New()
	for i := 0; i < c.Len(); i++ {
		for _, r := range c.Pattern(i) {
			assert.Contains(t, "=-x+~", string(r))
		}
	}
}

func TestVariantsV2AppendsTrailingShort(t *testing.T) {
	p := "=-=="
	v2 := catalogue.Variant(p, 2)
	assert.Equal(t, p+"-", v2)
}

func TestVariantsV3DropsTrailingSymbol(t *testing.T) {
	p := "=-=="
	v3 := catalogue.Variant(p, 3)
	assert.Equal(t, "=-=", v3)
}

func TestVariantsV1StripsFinalSegment(t *testing.T) {
	p := "=-==+=-=="
	v1 := catalogue.Variant(p, 1)
	assert.Equal(t, "=-==+=-=", v1)
}

func TestAfailRetainsSeparatorsAndDecomposesGreedily(t *testing.T) {
	c := catalogue.New()
	feet := c.Afail(c.Pattern(0))
	assert.Equal(t, []string{"مفعول", "فاعلاتن", "+", "مفعول", "فاعلاتن"}, feet)
}

func TestAfailRenderJoinsWithSpaces(t *testing.T) {
	c := catalogue.New()
	feet := c.Afail(c.Pattern(2))
	rendered := catalogue.Render(feet)
	assert.True(t, strings.Contains(rendered, "مفاعیلن"))
	assert.Equal(t, "مفاعیلن مفاعیلن مفاعیلن مفاعیلن", rendered)
}

func TestIsSpecialMarksHindiAndZamzamaOnly(t *testing.T) {
	assert.True(t, catalogue.IsSpecial("بحر ہندی"))
	assert.True(t, catalogue.IsSpecial("بحر زمزمہ"))
	assert.False(t, catalogue.IsSpecial("بحر ہزج مثمن سالم"))
}

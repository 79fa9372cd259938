package hwp_extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Run("should strip CJK Unified Ideograph runs", func(t *testing.T) {
		assert.Equal(t, "abcd", sanitizeText("ab漢字cd"))
		assert.Equal(t, "", sanitizeText("漢字"))
	})

	t.Run("should strip control-category characters", func(t *testing.T) {
		assert.Equal(t, "hello", sanitizeText("hello\x01\x02"))
		assert.Equal(t, "hello", sanitizeText("hel​lo\x00"))
	})

	t.Run("should keep Korean text, whitespace, and punctuation", func(t *testing.T) {
		assert.Equal(t, "안녕, world!", sanitizeText("안녕, world!"))
		assert.Equal(t, "a b", sanitizeText("a b"))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		for _, s := range []string{
			"ab漢字cd\x01",
			"안녕하세요 hello\t\n",
			"",
			"plain ascii.",
		} {
			once := sanitizeText(s)
			assert.Equal(t, once, sanitizeText(once), "input %q", s)
		}
	})
}

package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	cases := map[string]string{
		"alice":      "alice",
		"%":          `\%`,
		"_":          `\_`,
		`\`:          `\\`,
		"100%_done":  `100\%\_done`,
		"dev_branch": `dev\_branch`,
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeLikePattern(in), in)
	}
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	r := run(t, "", "close", "appel", "ape", "apple", "peach", "puppy")
	assert.Equal(t, StatusSame, r.status)
	assert.Equal(t, "apple\nape\n", r.stdout)

	r = run(t, "", "close", "-n", "1", "appel", "ape", "apple", "peach", "puppy")
	assert.Equal(t, "apple\n", r.stdout)

	r = run(t, "", "close", "--cutoff", "0.95", "appel", "ape", "apple")
	assert.Equal(t, StatusDiffer, r.status)
	assert.Empty(t, r.stdout)
}

func TestCloseErrors(t *testing.T) {
	assert.Equal(t, StatusTrouble, run(t, "", "close", "-n", "0", "a", "b").status)
	assert.Equal(t, StatusTrouble, run(t, "", "close", "--cutoff", "1.5", "a", "b").status)
	assert.Equal(t, StatusTrouble, run(t, "", "close", "a").status)
}

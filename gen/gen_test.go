package gen

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marknode.gen")
	defer teardown()
	if _, err := exec.LookPath("tr"); err != nil {
		t.Skip("tr not available")
	}
	var out bytes.Buffer
	c := &Command{Ctx: context.Background()}
	err := c.Filter(`tr 'a-z' 'A-Z'`, strings.NewReader("<p>hi</p>"), &out)
	require.NoError(t, err)
	assert.Equal(t, "<P>HI</P>", out.String())
}

func TestFilterErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marknode.gen")
	defer teardown()
	c := &Command{}
	var out bytes.Buffer
	err := c.Filter("", strings.NewReader(""), &out)
	assert.ErrorContains(t, err, "No valid commands")
	err = c.Filter(`cat "unterminated`, strings.NewReader(""), &out)
	assert.Error(t, err)
	err = c.Filter("cat", strings.NewReader(""), nil)
	assert.ErrorContains(t, err, "no output writer")
	err = c.Filter("marknode-no-such-command", strings.NewReader(""), &out)
	assert.Error(t, err)
}

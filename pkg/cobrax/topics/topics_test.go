package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"requests.txt":        {Data: []byte("Requests name their package")},
		"descriptors.md":      {Data: []byte("# Descriptors\n\nPackage files")},
		"option-strict.txt":   {Data: []byte("Strict root checks")},
		"nested/variants.md":  {Data: []byte("# Variants")},
		"layout.txxt":         {Data: []byte("Layout\n======")},
		"ignored.json":        {Data: []byte("{}")},
		"nested/ignored.yaml": {Data: []byte("a: b")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		topic      string
		found      bool
		content    string
	}{
		{"txt by default", nil, "requests", true, "Requests name their package"},
		{"md by default", nil, "descriptors", true, "# Descriptors\n\nPackage files"},
		{"nested directories", nil, "variants", true, "# Variants"},
		{"custom extension off by default", nil, "layout", false, ""},
		{"custom extension enabled", []string{".txt", ".md", ".txxt"}, "layout", true, "Layout\n======"},
		{"unsupported extension", nil, "ignored", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewWithOptions(topicFS(), Options{Extensions: tt.extensions})
			require.NoError(t, tm.Scan())

			topic, ok := tm.GetTopic(tt.topic)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestTopicManager_ScanNilFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.Scan())
	assert.Empty(t, tm.ListTopics())
}

func TestTopicManager_GetTopicFlagSpellings(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.Scan())

	tests := []struct {
		input    string
		expected string
		found    bool
	}{
		{"requests", "requests", true},
		{"option-strict", "option-strict", true},
		{"strict", "option-strict", true},
		{"--strict", "option-strict", true},
		{"-strict", "option-strict", true},
		{"-s", "", false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_WriteList(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.Scan())

	var out bytes.Buffer
	require.NoError(t, tm.WriteList(&out, "pkgenv"))

	assert.Equal(t, []string{"descriptors", "option-strict", "requests", "variants"}, tm.ListTopics())
	assert.Contains(t, out.String(), "General topics:\n  descriptors\n  requests\n  variants\n")
	assert.Contains(t, out.String(), "Option topics:\n  --strict\n")
	assert.Contains(t, out.String(), "Use 'pkgenv help <topic>'")
}

func TestTopicManager_WriteListEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(fstest.MapFS{}).WriteList(&out, "pkgenv"))
	assert.Equal(t, "No help topics available.\n", out.String())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "testapp", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "activate",
		Short: "Activate packages",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, topicFS())
	require.NoError(t, err)

	// cobra adds the help command to the tree on Execute
	root.InitDefaultHelpCmd()
	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"topic", []string{"help", "requests"}, "Requests name their package"},
		{"topic list", []string{"help", "topics"}, "Available help topics:"},
		{"command help", []string{"help", "activate"}, "Activate packages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestInitialize_UnknownTopic(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, topicFS())
	require.NoError(t, err)

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"help", "nope"})
	assert.Error(t, root.Execute())
}

func TestMarkdownRenderer_SkipsNonMarkdown(t *testing.T) {
	r := NewMarkdownRenderer()
	assert.Equal(t, "# Plain", r.Render("# Plain", ".txt"))
	assert.Equal(t, "plain", (&PlainRenderer{}).Render("plain", ".md"))
}

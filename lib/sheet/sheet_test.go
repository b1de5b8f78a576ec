package sheet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetInsertAndFlush(t *testing.T) {
	s := New("css", "abc123")
	assert.Equal(t, "css", s.Key())
	assert.Equal(t, "abc123", s.Nonce())

	s.Insert(".a{color:red;}", ".b{color:blue;}")
	s.Insert(".c{margin:0;}")

	require.Equal(t, 3, s.Len())
	assert.Equal(t, ".a{color:red;}.b{color:blue;}.c{margin:0;}", s.String())

	rules := s.Rules()
	rules[0] = "mutated"
	assert.Equal(t, ".a{color:red;}", s.Rules()[0], "Rules must return a copy")

	s.Flush()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.String())
}

func TestSheetConcurrentInsert(t *testing.T) {
	s := New("css", "")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Insert(".x{}")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		styles   string
		want     []string
	}{
		{
			name:     "declarations",
			selector: ".css-1",
			styles:   "color: red; padding : 2px",
			want:     []string{".css-1{color:red;padding:2px;}"},
		},
		{
			name:     "important",
			selector: ".css-1",
			styles:   "color: red !important;",
			want:     []string{".css-1{color:red!important;}"},
		},
		{
			name:     "ampersand",
			selector: ".css-1",
			styles:   "color:red;&:hover{color:blue;}",
			want:     []string{".css-1{color:red;}", ".css-1:hover{color:blue;}"},
		},
		{
			name:     "descendant",
			selector: ".css-1",
			styles:   "span{margin:0;}",
			want:     []string{".css-1 span{margin:0;}"},
		},
		{
			name:     "selector list",
			selector: ".css-1",
			styles:   "&:hover,&:focus{outline:none;}",
			want:     []string{".css-1:hover,.css-1:focus{outline:none;}"},
		},
		{
			name:     "media",
			selector: ".css-1",
			styles:   "@media (min-width: 10px){padding:2px;&:hover{color:red;}}",
			want:     []string{"@media (min-width: 10px){.css-1{padding:2px;}.css-1:hover{color:red;}}"},
		},
		{
			name:     "passthrough at-rule",
			selector: ".css-1",
			styles:   "@font-face{font-family:x;}",
			want:     []string{"@font-face{font-family:x;}"},
		},
		{
			name:     "comments",
			selector: ".css-1",
			styles:   "/* note */color:red;",
			want:     []string{".css-1{color:red;}"},
		},
		{
			name:     "semicolon inside url",
			selector: ".css-1",
			styles:   "background:url(data:image/png;base64,AA);",
			want:     []string{".css-1{background:url(data:image/png;base64,AA);}"},
		},
		{
			name:     "complete rules",
			selector: "",
			styles:   "@keyframes animation-x{from{opacity:0;}to{opacity:1;}}",
			want:     []string{"@keyframes animation-x{from{opacity:0;}to{opacity:1;}}"},
		},
		{
			name:     "empty",
			selector: ".css-1",
			styles:   "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.selector, tt.styles))
		})
	}
}

func TestDeclarationsCustomProperty(t *testing.T) {
	assert.Equal(t, "--gap:8px;color:red;", Declarations([]string{" --gap: 8px", "color:red", ""}))
}

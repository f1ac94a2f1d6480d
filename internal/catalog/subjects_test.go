package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownSubjects(t *testing.T) {
	tests := []struct {
		name         string
		subject      string
		wantPartII   bool
		wantChapters int
	}{
		{
			name:         "Company Law has two parts",
			subject:      "Company Law",
			wantPartII:   true,
			wantChapters: 12,
		},
		{
			name:         "JIGL is a single part subject",
			subject:      "JIGL",
			wantPartII:   false,
			wantChapters: 18,
		},
		{
			name:         "SUBIL has two parts",
			subject:      "SUBIL",
			wantPartII:   true,
			wantChapters: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Get(tt.subject)
			require.True(t, ok)
			require.NotNil(t, s.PartI)
			assert.Len(t, s.PartI.Chapters, tt.wantChapters)
			if tt.wantPartII {
				assert.NotNil(t, s.PartII)
			} else {
				assert.Nil(t, s.PartII)
			}
		})
	}
}

func TestGet_UnknownSubject(t *testing.T) {
	_, ok := Get("Tax Law")
	assert.False(t, ok)
}

package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/notesync/internal/models"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestIsTransientName(t *testing.T) {
	transient := []string{"", "  ", "untitled", "untitled.md", "Untitled 2.md", "Note", "Note 3", "Note3.md", "Code", "Code 2.js"}
	for _, name := range transient {
		assert.True(t, IsTransientName(name), name)
	}

	regular := []string{"notes.md", "Notebook.md", "Note on Go.md", "Codex.md", "my untitled.md", "Todo"}
	for _, name := range regular {
		assert.False(t, IsTransientName(name), name)
	}
}

func TestEvaluate(t *testing.T) {
	modified := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		doc      models.Document
		name     string
		reason   string
		expected bool
	}{
		{
			name:   "transient name never syncs even when forced",
			doc:    models.Document{Name: "untitled.md", ForceSync: true, LastModified: modified},
			reason: ReasonTransient,
		},
		{
			name:   "todo handled separately",
			doc:    models.Document{Name: models.TodoDocumentName, LastModified: modified},
			reason: ReasonAggregate,
		},
		{
			name:   "aggregate kind handled separately",
			doc:    models.Document{Name: "chat", Kind: models.KindAggregate, LastModified: modified},
			reason: ReasonAggregate,
		},
		{
			name:     "forced",
			doc:      models.Document{Name: "notes.md", ForceSync: true, LastModified: modified, LastSynced: timePtr(modified.Add(time.Hour))},
			reason:   ReasonForced,
			expected: true,
		},
		{
			name:     "never synced",
			doc:      models.Document{Name: "notes.md", LastModified: modified},
			reason:   ReasonNeverSynced,
			expected: true,
		},
		{
			name:     "modified after sync",
			doc:      models.Document{Name: "notes.md", LastModified: modified, LastSynced: timePtr(modified.Add(-time.Second))},
			reason:   ReasonModified,
			expected: true,
		},
		{
			name:   "modified equals sync",
			doc:    models.Document{Name: "notes.md", LastModified: modified, LastSynced: timePtr(modified)},
			reason: ReasonUpToDate,
		},
		{
			name:   "modified before sync",
			doc:    models.Document{Name: "notes.md", LastModified: modified, LastSynced: timePtr(modified.Add(time.Minute))},
			reason: ReasonUpToDate,
		},
		{
			name:     "unknown modification time",
			doc:      models.Document{Name: "notes.md", LastSynced: timePtr(modified)},
			reason:   ReasonUnknownTime,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(&tt.doc)
			assert.Equal(t, tt.expected, decision.Sync)
			assert.Equal(t, tt.reason, decision.Reason)
			assert.Equal(t, tt.expected, ShouldSync(&tt.doc))
		})
	}
}

func TestStale_Monotonic(t *testing.T) {
	synced := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	for offset := -3 * time.Hour; offset <= 3*time.Hour; offset += 17 * time.Minute {
		doc := &models.Document{Name: "notes.md", LastModified: synced.Add(offset), LastSynced: timePtr(synced)}
		assert.Equal(t, offset > 0, Stale(doc).Sync, "offset %s", offset)
	}
}

func TestStale_IgnoresName(t *testing.T) {
	doc := &models.Document{Name: models.TodoDocumentName, Kind: models.KindAggregate, LastModified: time.Now()}
	assert.True(t, Stale(doc).Sync)
}

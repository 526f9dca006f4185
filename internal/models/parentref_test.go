package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParentRef(t *testing.T) {
	tests := []struct {
		name         string
		relatedTo    string
		relatedID    string
		allowGeneral bool
		want         ParentRef
		wantErr      bool
	}{
		{
			name:      "client with id",
			relatedTo: "client",
			relatedID: "c-1",
			want:      ParentRef{Kind: ParentClient, ID: "c-1"},
		},
		{
			name:      "lead with id",
			relatedTo: "lead",
			relatedID: "l-1",
			want:      ParentRef{Kind: ParentLead, ID: "l-1"},
		},
		{
			name:      "client without id",
			relatedTo: "client",
			wantErr:   true,
		},
		{
			name:      "lead without id",
			relatedTo: "lead",
			wantErr:   true,
		},
		{
			name:         "general where allowed",
			relatedTo:    "general",
			allowGeneral: true,
			want:         ParentRef{Kind: ParentGeneral},
		},
		{
			name:      "general where forbidden",
			relatedTo: "general",
			wantErr:   true,
		},
		{
			name:         "unknown kind",
			relatedTo:    "invoice",
			relatedID:    "i-1",
			allowGeneral: true,
			wantErr:      true,
		},
		{
			name:         "empty kind",
			relatedTo:    "",
			allowGeneral: true,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseParentRef(tt.relatedTo, tt.relatedID, tt.allowGeneral)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidParent))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestTaskApplyParent(t *testing.T) {
	task := &Task{Title: "call"}

	task.ApplyParent(ParentRef{Kind: ParentClient, ID: "c-1"})
	require.NotNil(t, task.ClientID)
	assert.Equal(t, "c-1", *task.ClientID)
	assert.Nil(t, task.LeadID)
	require.NotNil(t, task.RelatedID)
	assert.Equal(t, "c-1", *task.RelatedID)
	assert.Equal(t, "client", task.RelatedTo)

	// Repointing to a lead must clear the client key
	task.ApplyParent(ParentRef{Kind: ParentLead, ID: "l-9"})
	assert.Nil(t, task.ClientID)
	require.NotNil(t, task.LeadID)
	assert.Equal(t, "l-9", *task.LeadID)
	assert.Equal(t, "lead", task.RelatedTo)

	// General clears everything
	task.ApplyParent(ParentRef{Kind: ParentGeneral})
	assert.Nil(t, task.ClientID)
	assert.Nil(t, task.LeadID)
	assert.Nil(t, task.RelatedID)
	assert.Equal(t, "general", task.RelatedTo)
}

func TestTaskParentRoundTrip(t *testing.T) {
	refs := []ParentRef{
		{Kind: ParentClient, ID: "c-1"},
		{Kind: ParentLead, ID: "l-1"},
		{Kind: ParentGeneral},
	}

	for _, ref := range refs {
		task := &Task{}
		task.ApplyParent(ref)
		assert.Equal(t, ref, task.Parent())
	}
}

func TestNoteApplyParent(t *testing.T) {
	note := &Note{Content: "hello"}

	note.ApplyParent(ParentRef{Kind: ParentLead, ID: "l-1"})
	require.NotNil(t, note.LeadID)
	assert.Equal(t, "l-1", *note.LeadID)
	assert.Nil(t, note.ClientID)
	assert.Equal(t, "l-1", note.RelatedID)

	note.ApplyParent(ParentRef{Kind: ParentClient, ID: "c-2"})
	assert.Nil(t, note.LeadID)
	require.NotNil(t, note.ClientID)
	assert.Equal(t, "c-2", *note.ClientID)
	assert.Equal(t, ParentRef{Kind: ParentClient, ID: "c-2"}, note.Parent())
}

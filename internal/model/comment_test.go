package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStatusLabelRoundTrip(t *testing.T) {
	for _, label := range []string{StatusLabelPending, StatusLabelApproved, StatusLabelRejected} {
		status, ok := ParseStatusLabel(label)
		require.True(t, ok)
		require.Equal(t, label, StatusLabel(status))
	}

	_, ok := ParseStatusLabel("archived")
	require.False(t, ok)

	// 未知的存储值按待审展示
	require.Equal(t, StatusLabelPending, StatusLabel(int8(9)))
}

func TestCommentIsRoot(t *testing.T) {
	c := &Comment{}
	require.True(t, c.IsRoot())

	parentID := primitive.NewObjectID()
	c.ParentID = &parentID
	require.False(t, c.IsRoot())
}

package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageSubmessagesFlattensNestedBlocks(t *testing.T) {
	msg := Message{
		Blocks: []LocalBlock{
			{
				Grids: []GridBlock{
					{Fields: []DataField{{}, {}}},
					{Fields: []DataField{{}}},
				},
			},
			{
				Grids: []GridBlock{
					{Fields: []DataField{{}}},
				},
			},
		},
	}

	views := msg.Submessages()
	assert.Len(t, views, 4)
	assert.Equal(t, 4, msg.NumDataFields())
}

func TestMessageSubmessagesEmpty(t *testing.T) {
	var msg Message
	assert.Nil(t, msg.Submessages())
	assert.Equal(t, 0, msg.NumDataFields())
}

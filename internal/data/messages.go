package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MessagesStore provides message database operations.
type MessagesStore struct {
	coll *mongo.Collection
}

// NewMessagesStore returns a MessagesStore using the given collection.
func NewMessagesStore(coll *mongo.Collection) *MessagesStore {
	return &MessagesStore{coll: coll}
}

// SaveMessage inserts a message document and returns the saved record with
// its server-assigned id and timestamp. The saved copy is what gets pushed
// to the room's live streams; the sender never echoes locally.
func (m *MessagesStore) SaveMessage(ctx context.Context, roomID, senderID, text string, isOwnerSender bool) (*Message, error) {
	msg := &Message{
		RoomID:        roomID,
		SenderID:      senderID,
		Text:          text,
		IsOwnerSender: isOwnerSender,
		CreatedAt:     time.Now().UTC(),
	}

	result, err := m.coll.InsertOne(ctx, msg)
	if err != nil {
		return nil, err
	}

	// Populate the generated _id; it doubles as the redelivery guard key on
	// the live feed.
	msg.ID = result.InsertedID.(bson.ObjectID)
	return msg, nil
}

// RoomMessages returns every message in a room, oldest first. Ties on
// created_at are broken by insertion id so the order is total and matches
// what live appends will extend.
func (m *MessagesStore) RoomMessages(ctx context.Context, roomID string) ([]*Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := m.coll.Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*Message
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

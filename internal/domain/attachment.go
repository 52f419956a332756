package domain

import "time"

// Attachment is the metadata record for an object stored in S3 (product
// images, order receipts). The bytes live in the bucket under Key.
type Attachment struct {
	AttachmentID string    `json:"id" dynamodbav:"attachment_id"`
	Key          string    `json:"key" dynamodbav:"key"`
	Name         string    `json:"name" dynamodbav:"name"`
	Size         int64     `json:"size" dynamodbav:"size"`
	ContentType  string    `json:"contentType" dynamodbav:"content_type"`
	Hash         string    `json:"hash" dynamodbav:"hash"`
	UploadedBy   string    `json:"uploadedBy" dynamodbav:"uploaded_by"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

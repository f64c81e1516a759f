package models

// Profile is a read-only catalog card.
type Profile struct {
	ID            string   `dynamodbav:"id" json:"id"`
	Position      int      `dynamodbav:"position,omitempty" json:"-"` // catalog ordering when loaded from DynamoDB
	Name          string   `dynamodbav:"name" json:"name"`
	Age           int      `dynamodbav:"age" json:"age"`
	Bio           string   `dynamodbav:"bio" json:"bio"`
	JobTitle      string   `dynamodbav:"jobTitle" json:"jobTitle"`
	Company       string   `dynamodbav:"company" json:"company"`
	Location      string   `dynamodbav:"location" json:"location"`
	Compatibility int      `dynamodbav:"compatibility" json:"compatibility"`
	Cover         string   `dynamodbav:"cover" json:"cover"`
	Avatar        string   `dynamodbav:"avatar" json:"avatar"`
	Interests     []string `dynamodbav:"interests,omitempty" json:"interests"`
	Prompt        string   `dynamodbav:"prompt,omitempty" json:"prompt"`
	PromptAnswer  string   `dynamodbav:"promptAnswer,omitempty" json:"promptAnswer"`
}

// ProfilesTable is the DynamoDB table the catalog is read from
const ProfilesTable = "Profiles"

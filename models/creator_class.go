package models

// Video is embedded inside a CreatorClass document and has no lifecycle of
// its own. VideoID values are unique and increasing within the parent class.
type Video struct {
	VideoID     string `json:"videoId" dynamodbav:"videoId"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description" dynamodbav:"description"`
	VideoSrc    string `json:"videoSrc" dynamodbav:"videoSrc"`
	Seconds     int    `json:"seconds" dynamodbav:"seconds"`
}

// CreatorClass is one class document. ID doubles as the partition key and is a
// stringified sequential integer issued by the Counters table.
type CreatorClass struct {
	ID          string  `json:"id" dynamodbav:"id"`
	Name        string  `json:"name" dynamodbav:"name"`
	ImageSrc    string  `json:"imageSrc" dynamodbav:"imageSrc"`
	Description string  `json:"description" dynamodbav:"description"`
	CreatorID   int     `json:"creatorId" dynamodbav:"creatorId"`
	Videos      []Video `json:"videos" dynamodbav:"videos"`

	// Version guards read-modify-write of the embedded video list.
	Version int64 `json:"-" dynamodbav:"version"`
}

// CreatorClassDto is the POST /classes payload.
type CreatorClassDto struct {
	ClassID     string `json:"classId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VideoDto is the POST /classes/{id}/videos payload.
type VideoDto struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	VideoSrc    string `json:"videoSrc"`
	Seconds     int    `json:"seconds"`
}

// CreatorClassesTable is the DynamoDB table name for class documents
const CreatorClassesTable = "CreatorClasses"

package models

// FormSchema is the generated application-form layout before it is converted
// into form-service createItem requests.
type FormSchema struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []FormQuestion `json:"questions"`
}

type FormQuestion struct {
	Type        string `json:"type"` // "text" | "paragraph"
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type InterviewQuestion struct {
	QuestionNumber int    `bson:"questionNumber" json:"questionNumber"`
	Question       string `bson:"question" json:"question"`
}

type ReportTemplate struct {
	Categories []ReportCategory `bson:"categories" json:"categories"`
}

type ReportCategory struct {
	Category        string `bson:"category" json:"category"`
	JudgingCriteria string `bson:"judging_criteria" json:"judging_criteria"`
}

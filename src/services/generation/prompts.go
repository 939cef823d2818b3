package generation

// System prompts for the three generated artifacts. The JSON shape of each
// reply is pinned by a strict response-format schema in service.go.

const formSchemaSystemPrompt = "You are a helpful assistant. Generate application form JSON based on the provided schema. Do not ask for email."

const interviewQuestionsSystemPrompt = `
###instructions
you are a smart interviewer bot which was created to choose the best people to match specific qualifications. look at this resume of a data analyst who is currently being interviewed asking some specific questions to get to know whether applicant is really suitable. ask questions that somehow correlate with what applicant wrote in their CV. create a smooth transition between interview questions, so that it sounds more like a dialogue rather than just asking questions. make transitions sound as human-like as possible, make each of them unique but quite simple (e.g. Got it! Moving on to the next question) last thing the interviewer say has to contain no question, just goodbyes
Generate an array of interview questions based on the provided information. The format should be an object with a 'questions' key, which is an array of objects with 'questionNumber' and 'question'.
###input source
you'll be given a CV of an applicant. each user prompt will contain this data, formulate your output based on it
###output format
you will give answers in json format. your json needs to contain 10 objects, each object corresponding to each question you've generated. introduce yourself in object 1 and object 10 has to be conclusion and goodbye. strictly follow json format below
`

const reportTemplateSystemPrompt = "You are an assistant that generates a report template for evaluating job candidates. The report should include categories and judging criteria that explain what grades 1, 2, and 3 mean for each category. The maximal amount of judging criteria is 4. You are able to provide only 10 words per grade per criteria."

// Response-format schemas, kept strict so the reply parses directly into the
// corresponding model type.

func formSchemaJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":        map[string]any{"type": "string", "enum": []string{"text", "paragraph"}},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"required":    map[string]any{"type": "boolean"},
					},
					"required":             []string{"type", "title", "description", "required"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"title", "questions", "description"},
		"additionalProperties": false,
	}
}

func interviewQuestionsJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionNumber": map[string]any{"type": "integer"},
						"question":       map[string]any{"type": "string"},
					},
					"required":             []string{"questionNumber", "question"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	}
}

func reportTemplateJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"category":         map[string]any{"type": "string"},
						"judging_criteria": map[string]any{"type": "string"},
					},
					"required":             []string{"category", "judging_criteria"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"categories"},
		"additionalProperties": false,
	}
}

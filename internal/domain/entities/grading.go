package entities

// ChatRequest is the two-message exchange sent to the language model.
type ChatRequest struct {
	Instruction string // system message
	Prompt      string // user message
}

// GradeInput is one submission to be graded.
type GradeInput struct {
	Answer      string `json:"resposta"  validate:"required"`
	Instruction string `json:"instrucao" validate:"required"`
}

// GradeOutput is the graded text returned to the caller.
type GradeOutput struct {
	Result string `json:"resultado"`
}

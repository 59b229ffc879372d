package model

// MarksheetFields is the field map the external document parser returns for a
// scanned marksheet. Every field is optional: an unreadable document yields
// Error and whatever fields were still recoverable.
type MarksheetFields struct {
	Name               string          `json:"name,omitempty"`
	FatherName         string          `json:"father_name,omitempty"`
	RollNumber         string          `json:"roll_number,omitempty"`
	RegistrationNumber string          `json:"registration_number,omitempty"`
	DOB                string          `json:"dob,omitempty"`
	Exam               string          `json:"exam,omitempty"`
	Year               RawNumber       `json:"year,omitempty"`
	University         string          `json:"university,omitempty"`
	College            string          `json:"college,omitempty"`
	Percentage         RawNumber       `json:"percentage,omitempty"`
	CGPA               RawNumber       `json:"cgpa,omitempty"`
	Subjects           []SubjectRecord `json:"subjects,omitempty"`
	Error              string          `json:"error,omitempty"`
}

// SubjectRecord is one row of the marksheet's subject table.
type SubjectRecord struct {
	Name  string    `json:"name"`
	Marks RawNumber `json:"marks"`
	Grade string    `json:"grade"`
}

// ParseMarksheetOptions are the parse tuning query parameters, mirroring the
// parser service's own contract.
type ParseMarksheetOptions struct {
	Method string `form:"method,default=auto" binding:"omitempty,oneof=auto text ocr"`
	DPI    int    `form:"dpi,default=300" binding:"omitempty,min=72,max=600"`
}

// ParseMarksheetResult is the parser service's response envelope.
type ParseMarksheetResult struct {
	Fields MarksheetFields `json:"fields"`
	Method string          `json:"method,omitempty"`
	DPI    int             `json:"dpi,omitempty"`
}

package entity

// Field names and messages shared by request validation and the store write path.
const (
	FieldTitle   = "title"
	FieldContent = "content"

	MsgTitleRequired   = "제목을 입력해주세요"
	MsgContentRequired = "내용을 입력해주세요"
)

// Validate checks the storage-level constraints of an article: title and content must be non-empty.
// It returns nil or a sorted ValidationErrors.
func (a *Article) Validate() error {
	var errs ValidationErrors
	if a.Title == "" {
		errs = append(errs, ValidationError{Field: FieldTitle, Message: MsgTitleRequired})
	}
	if a.Content == "" {
		errs = append(errs, ValidationError{Field: FieldContent, Message: MsgContentRequired})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs.Sorted()
}

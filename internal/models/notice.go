package models

// DefaultNoticeAuthor is used when a notice is created without an author.
const DefaultNoticeAuthor = "NIT Goa"

type CreateNoticeRequest struct {
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Category string        `json:"category"`
	Author   Field[string] `json:"author"`
}

func (r *CreateNoticeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title == "" {
		errors["title"] = "title is required"
	}
	if r.Content == "" {
		errors["content"] = "content is required"
	}
	if r.Category == "" {
		errors["category"] = "category is required"
	}

	return errors
}

// AuthorOrDefault falls back to DefaultNoticeAuthor for a missing, null or empty author.
func (r *CreateNoticeRequest) AuthorOrDefault() string {
	if !r.Author.Set || r.Author.Null || r.Author.Value == "" {
		return DefaultNoticeAuthor
	}
	return r.Author.Value
}

type UpdateNoticeRequest struct {
	Title    Field[string] `json:"title"`
	Content  Field[string] `json:"content"`
	Category Field[string] `json:"category"`
	Author   Field[string] `json:"author"`
}

func (r *UpdateNoticeRequest) Validate() map[string]string {
	errors := make(map[string]string)
	requireNotNull(errors, "title", r.Title)
	requireNotNull(errors, "content", r.Content)
	requireNotNull(errors, "category", r.Category)
	return errors
}

func (r *UpdateNoticeRequest) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putIfSet(m, "title", r.Title)
	putIfSet(m, "content", r.Content)
	putIfSet(m, "category", r.Category)
	putIfSet(m, "author", r.Author)
	return m
}

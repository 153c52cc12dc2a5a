package models

const (
	LostFoundTypeLost  = "lost"
	LostFoundTypeFound = "found"
)

func IsLostFoundType(t string) bool {
	return t == LostFoundTypeLost || t == LostFoundTypeFound
}

type CreateLostFoundRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Type        string        `json:"type"`
	Image       Field[string] `json:"image"`
}

func (r *CreateLostFoundRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title == "" {
		errors["title"] = "title is required"
	}
	if r.Description == "" {
		errors["description"] = "description is required"
	}
	if r.Location == "" {
		errors["location"] = "location is required"
	}
	if r.Type == "" {
		errors["type"] = "type is required"
	} else if !IsLostFoundType(r.Type) {
		errors["type"] = "type must be 'lost' or 'found'"
	}

	return errors
}

type UpdateLostFoundRequest struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	Location    Field[string] `json:"location"`
	Type        Field[string] `json:"type"`
	Image       Field[string] `json:"image"`
}

func (r *UpdateLostFoundRequest) Validate() map[string]string {
	errors := make(map[string]string)

	requireNotNull(errors, "title", r.Title)
	requireNotNull(errors, "description", r.Description)
	requireNotNull(errors, "location", r.Location)
	if r.Type.Set && (r.Type.Null || !IsLostFoundType(r.Type.Value)) {
		errors["type"] = "type must be 'lost' or 'found'"
	}

	return errors
}

// Fields returns only the keys present in the request.
func (r *UpdateLostFoundRequest) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putIfSet(m, "title", r.Title)
	putIfSet(m, "description", r.Description)
	putIfSet(m, "location", r.Location)
	putIfSet(m, "type", r.Type)
	putIfSet(m, "image", r.Image)
	return m
}

func requireNotNull[T any](errors map[string]string, key string, f Field[T]) {
	if f.Set && f.Null {
		errors[key] = key + " cannot be null"
	}
}

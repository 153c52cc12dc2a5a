package models

// ProfileFields are the user-editable profile attributes stored in the users collection,
// keyed by the identity provider uid.
type ProfileFields struct {
	Name          Field[string] `json:"name"`
	RollNo        Field[string] `json:"rollNo"`
	Branch        Field[string] `json:"branch"`
	ContactNumber Field[string] `json:"contactNumber"`
	Hostel        Field[string] `json:"hostel"`
	RoomNumber    Field[string] `json:"roomNumber"`
	Batch         Field[string] `json:"batch"`
	BloodGroup    Field[string] `json:"bloodGroup"`
	BirthDate     Field[string] `json:"birthDate"`
}

func (p *ProfileFields) each(fn func(key string, f Field[string])) {
	fn("name", p.Name)
	fn("rollNo", p.RollNo)
	fn("branch", p.Branch)
	fn("contactNumber", p.ContactNumber)
	fn("hostel", p.Hostel)
	fn("roomNumber", p.RoomNumber)
	fn("batch", p.Batch)
	fn("bloodGroup", p.BloodGroup)
	fn("birthDate", p.BirthDate)
}

// Fields returns every allow-listed key present in the request, including explicit empty
// strings and nulls.
func (p *ProfileFields) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	p.each(func(key string, f Field[string]) {
		putIfSet(m, key, f)
	})
	return m
}

// SuppliedFields returns only keys carrying a non-empty value, so signup never writes blanks.
func (p *ProfileFields) SuppliedFields() map[string]interface{} {
	m := make(map[string]interface{})
	p.each(func(key string, f Field[string]) {
		if f.Set && !f.Null && f.Value != "" {
			m[key] = f.Value
		}
	})
	return m
}

// UpdateProfileRequest is the body of PUT /api/users/{id}.
type UpdateProfileRequest struct {
	ProfileFields
}

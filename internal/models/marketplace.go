package models

// DefaultSeller is used when a listing is created without a seller.
const DefaultSeller = "Anonymous"

type CreateListingRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       Field[float64] `json:"price"`
	Category    string         `json:"category"`
	Seller      Field[string]  `json:"seller"`
	Contact     Field[string]  `json:"contact"`
	Image       Field[string]  `json:"image"`
}

func (r *CreateListingRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title == "" {
		errors["title"] = "title is required"
	}
	if r.Description == "" {
		errors["description"] = "description is required"
	}
	// Zero is a valid price; only a missing or null price is rejected.
	if !r.Price.Set || r.Price.Null {
		errors["price"] = "price is required"
	}
	if r.Category == "" {
		errors["category"] = "category is required"
	}

	return errors
}

func (r *CreateListingRequest) SellerOrDefault() string {
	if !r.Seller.Set || r.Seller.Null || r.Seller.Value == "" {
		return DefaultSeller
	}
	return r.Seller.Value
}

// ContactOrNil maps a missing or empty contact to null.
func (r *CreateListingRequest) ContactOrNil() interface{} {
	if !r.Contact.Set || r.Contact.Null || r.Contact.Value == "" {
		return nil
	}
	return r.Contact.Value
}

type UpdateListingRequest struct {
	Title       Field[string]  `json:"title"`
	Description Field[string]  `json:"description"`
	Price       Field[float64] `json:"price"`
	Category    Field[string]  `json:"category"`
	Seller      Field[string]  `json:"seller"`
	Contact     Field[string]  `json:"contact"`
	Image       Field[string]  `json:"image"`
}

func (r *UpdateListingRequest) Validate() map[string]string {
	errors := make(map[string]string)
	requireNotNull(errors, "title", r.Title)
	requireNotNull(errors, "description", r.Description)
	requireNotNull(errors, "category", r.Category)
	if r.Price.Set && r.Price.Null {
		errors["price"] = "price must be a number"
	}
	return errors
}

func (r *UpdateListingRequest) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	putIfSet(m, "title", r.Title)
	putIfSet(m, "description", r.Description)
	putIfSet(m, "price", r.Price)
	putIfSet(m, "category", r.Category)
	putIfSet(m, "seller", r.Seller)
	putIfSet(m, "contact", r.Contact)
	putIfSet(m, "image", r.Image)
	return m
}

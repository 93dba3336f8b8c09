package api

import (
	"encoding/json"
	"strings"
	"time"

	"orchid/internal/domain/entity"
)

// The backend's payloads are loosely typed: ids arrive as strings or
// numbers, image URLs under three different names, booleans with and
// without the "is" prefix. All of that is adapted here, once, so the rest
// of the client only ever sees entity types.

// flexString accepts a JSON string or number and yields a string.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""

		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())

	return nil
}

// flexTime accepts the backend's two timestamp shapes: RFC 3339 and the
// zone-less LocalDateTime serialization.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*t = flexTime(time.Time{})

		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = flexTime(parsed)

			return nil
		}
	}

	// Unparseable timestamps degrade to zero rather than failing the whole
	// payload.
	*t = flexTime(time.Time{})

	return nil
}

type categoryWire struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

func (w categoryWire) toEntity() entity.Category {
	return entity.Category{ID: string(w.ID), Name: w.Name}
}

type orchidWire struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`

	// Image URL aliases observed across backend variants.
	URL       string `json:"url"`
	Image     string `json:"image"`
	OrchidURL string `json:"orchidUrl"`

	IsNatural *bool `json:"isNatural"`
	Natural   *bool `json:"natural"`

	IsAvailable *bool `json:"isAvailable"`
	Available   *bool `json:"available"`

	Category *categoryWire `json:"category"`
}

func (w orchidWire) toEntity() entity.Orchid {
	o := entity.Orchid{
		ID:          string(w.ID),
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		ImageURL:    firstNonEmpty(w.URL, w.Image, w.OrchidURL),
		Natural:     boolAlias(w.IsNatural, w.Natural, false),
		// Absent availability means sellable; only an explicit false hides
		// the product.
		Available: boolAlias(w.IsAvailable, w.Available, true),
	}
	if w.Category != nil {
		cat := w.Category.toEntity()
		o.Category = &cat
	}

	return o
}

// orchidRequest is the admin create/update payload in the backend's shape.
type orchidRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Price       float64 `json:"price"`
	IsNatural   bool    `json:"isNatural"`
	CategoryID  string  `json:"categoryId"`
}

func orchidRequestFrom(o entity.Orchid) orchidRequest {
	req := orchidRequest{
		Name:        o.Name,
		Description: o.Description,
		URL:         o.ImageURL,
		Price:       o.Price,
		IsNatural:   o.Natural,
	}
	if o.Category != nil {
		req.CategoryID = o.Category.ID
	}

	return req
}

// roleWire accepts a bare role string or the backend's role object.
type roleWire struct {
	value string
}

func (r *roleWire) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		r.value = ""

		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		return json.Unmarshal(data, &r.value)
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.value = obj.Name

	return nil
}

type accountWire struct {
	ID    flexString `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  roleWire   `json:"role"`
}

func (w accountWire) toEntity() entity.Account {
	return entity.Account{
		ID:    string(w.ID),
		Name:  w.Name,
		Email: w.Email,
		Role:  entity.ParseRole(w.Role.value),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string      `json:"token"`
	AccountData accountWire `json:"accountData"`
}

type createOrderResponse struct {
	OrderID flexString `json:"orderId"`
	// Some backend variants return the created order instead of a bare id.
	ID flexString `json:"id"`
}

func (r createOrderResponse) orderID() string {
	if r.OrderID != "" {
		return string(r.OrderID)
	}

	return string(r.ID)
}

type orderDetailWire struct {
	OrchidID   flexString `json:"orchidId"`
	OrchidName string     `json:"orchidName"`
	UnitPrice  float64    `json:"unitPrice"`
	Price      float64    `json:"price"`
	Quantity   int        `json:"quantity"`
}

type orderWire struct {
	ID              flexString        `json:"id"`
	TotalAmount     float64           `json:"totalAmount"`
	OrderDate       flexTime          `json:"orderDate"`
	OrderStatus     string            `json:"orderStatus"`
	AccountID       flexString        `json:"accountId"`
	ShippingAddress string            `json:"shippingAddress"`
	Note            string            `json:"note"`
	OrderDetails    []orderDetailWire `json:"orderDetails"`
}

func (w orderWire) toEntity() entity.Order {
	details := make([]entity.OrderDetail, 0, len(w.OrderDetails))
	for _, d := range w.OrderDetails {
		unitPrice := d.UnitPrice
		if unitPrice == 0 {
			unitPrice = d.Price
		}
		details = append(details, entity.OrderDetail{
			OrchidID:   string(d.OrchidID),
			OrchidName: d.OrchidName,
			UnitPrice:  unitPrice,
			Quantity:   d.Quantity,
		})
	}

	return entity.Order{
		ID:              string(w.ID),
		TotalAmount:     w.TotalAmount,
		OrderDate:       time.Time(w.OrderDate),
		Status:          entity.OrderStatus(w.OrderStatus),
		AccountID:       string(w.AccountID),
		ShippingAddress: w.ShippingAddress,
		Note:            w.Note,
		Details:         details,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func boolAlias(primary, secondary *bool, fallback bool) bool {
	if primary != nil {
		return *primary
	}
	if secondary != nil {
		return *secondary
	}

	return fallback
}

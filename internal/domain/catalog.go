package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the canonical product identifier. Source documents carry ids as
// either JSON strings or numbers; both decode to the same string form so
// lookups never depend on the wire type.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// SpecPair is one "key: value" specification line.
type SpecPair struct {
	Key   string
	Value string
}

// SpecList decodes a JSON object while preserving key order, which a
// plain map would lose.
type SpecList []SpecPair

func (s *SpecList) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specifications: expected object, got %v", tok)
	}
	out := SpecList{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("specifications: bad key %v", kt)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("specifications[%s]: %w", key, err)
		}
		out = append(out, SpecPair{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}
	*s = out
	return nil
}

func (s SpecList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(p.Key)
		v, _ := json.Marshal(p.Value)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Raw document shapes as served by /api/products.

type RawProductDocument struct {
	Products []RawProduct `json:"products"`
}

type RawProduct struct {
	ProductID    ID           `json:"product_id"`
	ProductName  string       `json:"product_name"`
	Brand        string       `json:"brand"`
	BaseImageURL string       `json:"base_image_url"`
	Description  string       `json:"description"`
	Variants     []RawVariant `json:"variants"`
}

type RawVariant struct {
	Specifications SpecList   `json:"specifications"`
	Offers         []RawOffer `json:"offers"`
}

type RawOffer struct {
	SellerName      string  `json:"seller_name"`
	Price           float64 `json:"price"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"rating_count"`
	DeliveryInDays  int     `json:"delivery_in_days"`
	IsTrustedSeller bool    `json:"is_trusted_seller"`
}

// Category is the derived catalog tag.
type Category string

const (
	CategoryMobiles     Category = "mobiles"
	CategoryLaptops     Category = "laptops"
	CategoryWatches     Category = "watches"
	CategoryCameras     Category = "cameras"
	CategoryAudio       Category = "audio"
	CategoryElectronics Category = "electronics"
)

// Product is the flattened, immutable catalog entry derived from the
// first variant of a RawProduct.
type Product struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Category       Category `json:"category"`
	Specifications []string `json:"specifications"`
	Sellers        []Seller `json:"sellers"`
}

type Seller struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	DeliveryDays int     `json:"deliveryDays"`
	Trusted      bool    `json:"trusted"`
}

// CartItem is one cart line. Duplicates are allowed; removal is by
// positional index.
type CartItem struct {
	ProductID  ID      `json:"productId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	SellerName string  `json:"sellerName"`
	Price      float64 `json:"price"`
}

// Session is the single client identity. No expiry model.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

package mldomain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SearchResponse é a resposta de /sites/{site}/search
type SearchResponse struct {
	SiteID  string         `json:"site_id"`
	Results []SearchResult `json:"results"`
	Paging  Paging         `json:"paging"`
}

type SearchResult struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
}

type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MultiGetEntry é um elemento da resposta de /items?ids=
type MultiGetEntry struct {
	Code int  `json:"code"`
	Body Item `json:"body"`
}

type Item struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Price      float64        `json:"price"`
	CategoryID string         `json:"category_id"`
	Pictures   []Picture      `json:"pictures"`
	VideoID    OptionalString `json:"video_id"`
}

type Picture struct {
	ID  string `json:"id"`
	URL string `json:"secure_url"`
}

// OptionalString distingue campo ausente (Present=false) de campo null
type OptionalString struct {
	Present bool
	Value   *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package ipapi

import (
	"github.com/wingedpig/getip/pkg/extract"
	"github.com/wingedpig/getip/pkg/model"
)

// Response keys used by ip-api.com
const (
	KeyQuery      = "query"
	KeyCountry    = "country"
	KeyRegionName = "regionName"
	KeyCity       = "city"
	KeyISP        = "isp"
	KeyStatus     = "status"
	KeyMessage    = "message"
)

// ParseResult extracts the lookup fields from a response body.
// Missing keys leave the corresponding field marked as not found.
func ParseResult(body string) *model.LookupResult {
	return &model.LookupResult{
		IP:      field(body, KeyQuery),
		Country: field(body, KeyCountry),
		Region:  field(body, KeyRegionName),
		City:    field(body, KeyCity),
		ISP:     field(body, KeyISP),
		Status:  field(body, KeyStatus),
		Message: field(body, KeyMessage),
	}
}

func field(body, key string) model.Field {
	value, ok := extract.Field(body, key)
	return model.Field{Value: value, Found: ok}
}

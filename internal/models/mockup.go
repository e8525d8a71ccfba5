// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// MockupType names one staged real-world context for the brand's logo.
type MockupType string

const (
	MockupBillboard   MockupType = "billboard"
	MockupStorefront  MockupType = "storefront"
	MockupProduct     MockupType = "product"
	MockupStationery  MockupType = "stationery"
	MockupEnvironment MockupType = "environment"
)

// MockupTypes is the fixed generation and storage order of mockups.
// mockup_urls[i] always corresponds to MockupTypes[i].
var MockupTypes = []MockupType{
	MockupBillboard,
	MockupStorefront,
	MockupProduct,
	MockupStationery,
	MockupEnvironment,
}

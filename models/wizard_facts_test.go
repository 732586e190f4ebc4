package models

import (
	"testing"
)

func TestLookupFlatKeyWinsOverPath(t *testing.T) {
	facts := WizardFacts{
		"property.address": "flat value",
		"property": map[string]interface{}{
			"address": "nested value",
		},
	}

	v, ok := facts.Lookup("property.address")
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if v != "flat value" {
		t.Fatalf("expected literal key to win, got %v", v)
	}
}

func TestLookupNestedPath(t *testing.T) {
	facts := WizardFacts{
		"tenant": map[string]interface{}{
			"full_name": "J Smith",
		},
	}

	v, ok := facts.Lookup("tenant.full_name")
	if !ok || v != "J Smith" {
		t.Fatalf("expected nested path to resolve, got %v (ok=%v)", v, ok)
	}

	if _, ok := facts.Lookup("tenant.missing"); ok {
		t.Fatalf("expected missing nested key to report absence")
	}
	if _, ok := facts.Lookup("missing.path"); ok {
		t.Fatalf("expected missing root to report absence")
	}
}

func TestStringFallbackOrder(t *testing.T) {
	facts := WizardFacts{
		"tenant_name": "Second Choice",
		"tenant": map[string]interface{}{
			"full_name": "Third Choice",
		},
	}

	if got := facts.String("tenant_full_name", "tenant_name", "tenant.full_name"); got != "Second Choice" {
		t.Fatalf("expected first present key to win, got %q", got)
	}
	if got := facts.String("tenant_full_name", "tenant.full_name"); got != "Third Choice" {
		t.Fatalf("expected nested fallback, got %q", got)
	}
	if got := facts.String("absent_one", "absent_two"); got != "" {
		t.Fatalf("expected empty string for absent keys, got %q", got)
	}
}

func TestStringSkipsEmptyValues(t *testing.T) {
	facts := WizardFacts{
		"landlord_full_name": "   ",
		"landlord_name":      "A Lee",
	}

	if got := facts.String("landlord_full_name", "landlord_name"); got != "A Lee" {
		t.Fatalf("expected whitespace-only value to be skipped, got %q", got)
	}
}

func TestStringSliceScalarPromotion(t *testing.T) {
	facts := WizardFacts{"grounds": "8"}
	got := facts.StringSlice("grounds")
	if len(got) != 1 || got[0] != "8" {
		t.Fatalf("expected scalar promoted to single-element slice, got %v", got)
	}
}

func TestStringSliceFromJSONList(t *testing.T) {
	facts := WizardFacts{"grounds": []interface{}{"8", "10", 11}}
	got := facts.StringSlice("grounds")
	if len(got) != 3 || got[0] != "8" || got[2] != "11" {
		t.Fatalf("unexpected slice: %v", got)
	}

	empty := WizardFacts{"grounds": []interface{}{}}
	if got := empty.StringSlice("grounds"); got != nil {
		t.Fatalf("expected nil for empty list, got %v", got)
	}
}

func TestBoolTriState(t *testing.T) {
	facts := WizardFacts{
		"deposit_protected":    true,
		"gas_safety_provided":  "no",
		"epc_provided":         "Yes",
		"how_to_rent_provided": "maybe",
	}

	if v := facts.Bool("deposit_protected"); v == nil || !*v {
		t.Fatalf("expected true for native bool")
	}
	if v := facts.Bool("gas_safety_provided"); v == nil || *v {
		t.Fatalf("expected false for \"no\"")
	}
	if v := facts.Bool("epc_provided"); v == nil || !*v {
		t.Fatalf("expected true for \"Yes\"")
	}
	if v := facts.Bool("how_to_rent_provided"); v != nil {
		t.Fatalf("expected nil for unparseable answer, got %v", *v)
	}
	if v := facts.Bool("never_asked"); v != nil {
		t.Fatalf("expected nil for unanswered question, got %v", *v)
	}
}

func TestDecimalStripsCurrencyFormatting(t *testing.T) {
	facts := WizardFacts{
		"rent_amount":    "£1,250.50",
		"arrears_amount": 2501.0,
	}

	rent := facts.Decimal("rent_amount")
	if rent == nil || rent.StringFixed(2) != "1250.50" {
		t.Fatalf("expected 1250.50, got %v", rent)
	}
	arrears := facts.Decimal("arrears_amount")
	if arrears == nil || arrears.StringFixed(2) != "2501.00" {
		t.Fatalf("expected 2501.00, got %v", arrears)
	}
	if facts.Decimal("deposit_amount") != nil {
		t.Fatalf("expected nil for absent amount")
	}
}

func TestAddressWholeValueFirst(t *testing.T) {
	facts := WizardFacts{
		"property_address":       "1 Test St, Leeds",
		"property_address_line1": "should not be used",
	}

	if got := facts.Address("property_address"); got != "1 Test St, Leeds" {
		t.Fatalf("expected whole value to win, got %q", got)
	}
}

func TestAddressJoinsPartsWithNewlines(t *testing.T) {
	facts := WizardFacts{
		"property_address_line1":    "16 Waterloo Road",
		"property_address_town":     "Pudsey",
		"property_address_postcode": "LS28 7PW",
	}

	want := "16 Waterloo Road\nPudsey\nLS28 7PW"
	if got := facts.Address("property_address"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestAddressFallbackAcrossBases(t *testing.T) {
	facts := WizardFacts{
		"property": map[string]interface{}{
			"address": "Nested House, AB1 2CD",
		},
	}

	if got := facts.Address("property_address", "property.address"); got != "Nested House, AB1 2CD" {
		t.Fatalf("expected nested base fallback, got %q", got)
	}
	if got := facts.Address("nowhere"); got != "" {
		t.Fatalf("expected empty address, got %q", got)
	}
}

func TestMergeOverwritesExistingKeys(t *testing.T) {
	facts := WizardFacts{"rent_amount": "900", "tenant_full_name": "J Smith"}
	facts.Merge(WizardFacts{"rent_amount": "950", "grounds": []interface{}{"8"}})

	if facts["rent_amount"] != "950" {
		t.Fatalf("expected merged value to replace, got %v", facts["rent_amount"])
	}
	if facts["tenant_full_name"] != "J Smith" {
		t.Fatalf("expected untouched key to survive")
	}
	if _, ok := facts["grounds"]; !ok {
		t.Fatalf("expected new key to be added")
	}
}

func TestScanHandlesBytesStringAndNil(t *testing.T) {
	var fromBytes WizardFacts
	if err := fromBytes.Scan([]byte(`{"rent_amount":"900"}`)); err != nil {
		t.Fatalf("scan from bytes: %v", err)
	}
	if fromBytes["rent_amount"] != "900" {
		t.Fatalf("unexpected scan result: %v", fromBytes)
	}

	var fromString WizardFacts
	if err := fromString.Scan(`{"grounds":["8"]}`); err != nil {
		t.Fatalf("scan from string: %v", err)
	}

	var fromNil WizardFacts
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("scan from nil: %v", err)
	}
	if fromNil == nil {
		t.Fatalf("expected empty map after nil scan")
	}
}

package generator

import (
	"html/template"

	"github.com/shopspring/decimal"
)

// money formats an optional decimal for display in a rendered form
func money(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

var templateFuncs = template.FuncMap{
	"money": money,
}

const baseStyle = `body { font-family: Arial, sans-serif; font-size: 11pt; line-height: 1.4; margin: 40px; }
h1 { font-size: 14pt; font-weight: bold; text-align: center; margin-bottom: 5px; }
h2 { font-size: 12pt; font-weight: bold; text-align: center; margin-top: 5px; }
.header { text-align: center; margin-bottom: 20px; border-bottom: 2px solid black; padding-bottom: 10px; }
.form-no { font-size: 16pt; font-weight: bold; }
.section { margin-bottom: 15px; }
.section-num { font-weight: bold; }
.field-value { background-color: #f0f0f0; padding: 5px; border: 1px solid #ccc; margin: 5px 0; white-space: pre-wrap; }
.signature-block { margin-top: 30px; border-top: 1px solid black; padding-top: 20px; }
.checkbox { font-family: 'Courier New', monospace; }
.watermark { position: fixed; top: 40%; left: 10%; font-size: 60pt; color: rgba(200, 0, 0, 0.15); transform: rotate(-30deg); }
hr { border: none; border-top: 1px solid black; margin: 20px 0; }`

const watermarkBlock = `{{if .Preview}}<div class="watermark">PREVIEW &mdash; NOT FOR SERVICE</div>{{end}}`

// Form 3, Housing Act 1988 section 8: layout follows the official GOV.UK form
var section8Template = template.Must(template.New("section8").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Form 3 - Section 8 Notice</title>
<style>` + baseStyle + `</style>
</head>
<body>
` + watermarkBlock + `
<div class="header">
<p class="form-no">FORM NO. 3</p>
<p><strong>Housing Act 1988 section 8 (as amended)</strong></p>
<h1>NOTICE OF INTENTION TO BEGIN PROCEEDINGS FOR POSSESSION</h1>
<h2>OF A PROPERTY IN ENGLAND</h2>
<p>let on an Assured Tenancy or an Assured Agricultural Occupancy</p>
</div>

<hr>

<div class="section">
<p><span class="section-num">1. To:</span></p>
<div class="field-value">{{.Data.TenantFullName}}</div>
</div>

<div class="section">
<p><span class="section-num">2. Your landlord/licensor intends to apply to the court for an order requiring you to give up possession of:</span></p>
<div class="field-value">{{.Data.PropertyAddress}}</div>
</div>

<div class="section">
<p><span class="section-num">3. Your landlord/licensor intends to seek possession on ground(s):</span></p>
<div class="field-value"><strong>Grounds {{range $i, $g := .Data.Grounds}}{{if $i}}, {{end}}{{$g}}{{end}}</strong></div>
<p>in Schedule 2 to the Housing Act 1988 (as amended).</p>
</div>

<div class="section">
<p><span class="section-num">4. Give a full explanation of why each ground is being relied on:</span></p>
<div class="field-value">{{.Data.GroundParticulars}}
{{if .Data.ArrearsAmount}}
Current rent arrears: GBP {{money .Data.ArrearsAmount}}{{end}}{{if .Data.RentAmount}}
Rent amount: GBP {{money .Data.RentAmount}}{{if .Data.RentPeriod}} ({{.Data.RentPeriod}}){{end}}{{end}}</div>
</div>

<div class="section">
<p><span class="section-num">5. The court proceedings will not begin earlier than:</span></p>
<div class="field-value">{{.Data.EarliestProceedingsDate}}</div>
</div>

<div class="section">
<p><span class="section-num">6.</span> The latest date for court proceedings to begin is <strong>12 months</strong> from the date of service of this notice.</p>
</div>

<div class="signature-block">
<p><span class="section-num">7. Name and address of landlord, licensor or landlord's agent:</span></p>
<table style="margin-top: 15px;">
<tr><td style="width: 120px;"><strong>Name:</strong></td><td>{{.Data.LandlordFullName}}</td></tr>
<tr><td><strong>Address:</strong></td><td>{{.Data.LandlordAddress}}</td></tr>
<tr><td><strong>Telephone:</strong></td><td>{{.Data.LandlordPhone}}</td></tr>
</table>
<p style="margin-top: 15px;"><strong>Date:</strong> {{.Data.NoticeServiceDate}}</p>
</div>

</body>
</html>
`))

// Form 6A, Housing Act 1988 section 21(1) and (4)
var section21Template = template.Must(template.New("section21").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Form 6A - Section 21 Notice</title>
<style>` + baseStyle + `</style>
</head>
<body>
` + watermarkBlock + `
<div class="header">
<p class="form-no">FORM NO. 6A</p>
<p><strong>Housing Act 1988 section 21(1) and (4) (as amended)</strong></p>
<h1>NOTICE REQUIRING POSSESSION</h1>
<h2>OF A PROPERTY IN ENGLAND</h2>
<p>let on an Assured Shorthold Tenancy</p>
</div>

<hr>

<div class="section">
<p><span class="section-num">1. To:</span></p>
<div class="field-value">{{.Data.TenantFullName}}</div>
</div>

<div class="section">
<p><span class="section-num">2. You are required to leave the below address after:</span></p>
<div class="field-value">{{.Data.NoticeExpiryDate}}</div>

<p>If you do not leave, your landlord may apply to the court for an order under Section 21(1) or (4) of the Housing Act 1988 requiring you to give up possession of:</p>
<div class="field-value">{{.Data.PropertyAddress}}</div>

<p style="margin-top: 10px;">If your landlord does not apply to the court within a given timeframe this notice will lapse. Your landlord can rely on this notice to apply to the court during the period of 6 months commencing from the date this notice is given to you.</p>
</div>

<div class="signature-block">
<p><span class="section-num">3. Name and address of landlord or landlord's agent:</span></p>
<table style="margin-top: 15px;">
<tr><td style="width: 120px;"><strong>Name:</strong></td><td>{{.Data.LandlordFullName}}</td></tr>
<tr><td><strong>Address:</strong></td><td>{{.Data.LandlordAddress}}</td></tr>
<tr><td><strong>Telephone:</strong></td><td>{{.Data.LandlordPhone}}</td></tr>
</table>
<p style="margin-top: 15px;"><strong>Date:</strong> {{.Data.NoticeServiceDate}}</p>
</div>

</body>
</html>
`))

// Notice to Leave under the Private Housing (Tenancies) (Scotland) Act 2016
var noticeToLeaveTemplate = template.Must(template.New("notice_to_leave").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Notice to Leave</title>
<style>` + baseStyle + `</style>
</head>
<body>
` + watermarkBlock + `
<div class="header">
<p><strong>Private Housing (Tenancies) (Scotland) Act 2016</strong></p>
<h1>NOTICE TO LEAVE</h1>
<h2>PRIVATE RESIDENTIAL TENANCY</h2>
</div>

<hr>

<div class="section">
<p><span class="section-num">Part 1. To:</span></p>
<div class="field-value">{{.Data.TenantFullName}}</div>
<p>Tenant of:</p>
<div class="field-value">{{.Data.PropertyAddress}}</div>
</div>

<div class="section">
<p><span class="section-num">Part 2.</span> Your landlord intends to apply to the First-tier Tribunal for Scotland for an eviction order on the following ground(s) in schedule 3 of the 2016 Act:</p>
<div class="field-value">{{range $i, $g := .Data.Grounds}}{{if $i}}, {{end}}{{$g}}{{end}}</div>
<p>Explanation of why the ground(s) apply:</p>
<div class="field-value">{{.Data.GroundParticulars}}</div>
</div>

<div class="section">
<p><span class="section-num">Part 3.</span> An application to the Tribunal will not be made before:</p>
<div class="field-value">{{.Data.LeaveDate}}</div>
<p>Tenancy commencement (entry) date: {{.Data.EntryDate}}</p>
</div>

<div class="signature-block">
<p><span class="section-num">Part 4. Landlord:</span></p>
<table style="margin-top: 15px;">
<tr><td style="width: 120px;"><strong>Name:</strong></td><td>{{.Data.LandlordFullName}}</td></tr>
<tr><td><strong>Address:</strong></td><td>{{.Data.LandlordAddress}}</td></tr>
</table>
<p style="margin-top: 15px;"><strong>Date of service:</strong> {{.Data.NoticeServiceDate}}</p>
</div>

</body>
</html>
`))

// Shared tenancy-agreement template, parameterised on jurisdiction wording
// and tier. Premium adds the extended clause schedule.
var tenancyTemplate = template.Must(template.New("tenancy").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>` + baseStyle + `</style>
</head>
<body>
` + watermarkBlock + `
<div class="header">
<p><strong>{{.Statute}}</strong></p>
<h1>{{.Heading}}</h1>
</div>

<hr>

<div class="section">
<p><span class="section-num">1. The Parties</span></p>
<p>This agreement is made between:</p>
<table>
<tr><td style="width: 120px;"><strong>Landlord:</strong></td><td>{{.Data.LandlordFullName}}</td></tr>
<tr><td><strong>of:</strong></td><td>{{.Data.LandlordAddress}}</td></tr>
<tr><td><strong>Tenant:</strong></td><td>{{.Data.TenantFullName}}</td></tr>
</table>
</div>

<div class="section">
<p><span class="section-num">2. The Property</span></p>
<div class="field-value">{{.Data.PropertyAddress}}</div>
<p>Let {{if .Data.Furnished}}{{.Data.Furnished}}{{else}}as agreed between the parties{{end}}.</p>
</div>

<div class="section">
<p><span class="section-num">3. Term</span></p>
<p>The tenancy begins on <strong>{{.Data.TenancyStartDate}}</strong>{{if .Data.TenancyEndDate}} and is granted for a fixed term ending on <strong>{{.Data.TenancyEndDate}}</strong>{{else}} and continues until ended in accordance with this agreement and the law{{end}}.</p>
</div>

<div class="section">
<p><span class="section-num">4. Rent</span></p>
<p>The rent is <strong>GBP {{money .Data.RentAmount}}</strong> payable {{if .Data.RentPeriod}}{{.Data.RentPeriod}}{{else}}monthly{{end}} in advance.</p>
</div>

<div class="section">
<p><span class="section-num">5. Deposit</span></p>
{{if .Data.DepositAmount}}<p>A deposit of <strong>GBP {{money .Data.DepositAmount}}</strong> is payable{{if .Data.DepositScheme}} and will be protected with {{.Data.DepositScheme}}{{end}}.</p>{{else}}<p>No deposit is payable under this agreement.</p>{{end}}
</div>

<div class="section">
<p><span class="section-num">6. Tenant Obligations</span></p>
<p>The tenant agrees to pay the rent on the days it falls due, to keep the interior of the property in good and clean condition, to not cause nuisance to neighbours, and to permit the landlord reasonable access for inspection and repair on not less than 24 hours' notice.</p>
</div>

<div class="section">
<p><span class="section-num">7. Landlord Obligations</span></p>
<p>The landlord agrees to keep in repair the structure and exterior of the property and the installations for the supply of water, gas, electricity, sanitation, space heating and heating water, and to comply with all statutory safety obligations.</p>
</div>
{{if .Premium}}
<div class="section">
<p><span class="section-num">8. Additional Clauses (Premium Schedule)</span></p>
<p>8.1 Break clause: either party may end a fixed term after six months on two months' written notice.</p>
<p>8.2 Pets: no pet may be kept at the property without the landlord's prior written consent, not to be unreasonably withheld.</p>
<p>8.3 Subletting and assignment: the tenant may not sublet, assign or take in lodgers without the landlord's prior written consent.</p>
<p>8.4 Rent review: the rent may be reviewed no more than once in any twelve-month period in accordance with the statutory procedure.</p>
<p>8.5 Late payment: interest at 3% above the Bank of England base rate may be charged on rent more than 14 days overdue.</p>
</div>
{{end}}
<div class="signature-block">
<p>Signed by the landlord and tenant{{if .WitnessClause}} in the presence of a witness{{end}}:</p>
<table style="margin-top: 15px;">
<tr><td style="width: 120px;"><strong>Landlord:</strong></td><td>_________________________</td></tr>
<tr><td><strong>Tenant:</strong></td><td>_________________________</td></tr>
<tr><td><strong>Date:</strong></td><td>_________________________</td></tr>
</table>
</div>

</body>
</html>
`))

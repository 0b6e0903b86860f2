package incident

import (
	"strconv"
	"time"
)

// Column names of the DB sheet of the ticket export. The schema is fixed;
// loaders match headers against these exact names.
const (
	ColTaskText      = "Task text"
	ColSalesOffice   = "Sales Office"
	ColSalesGroup    = "Sales Group"
	ColSalesDistrict = "Sales district"
	ColPlant         = "Plant"
	ColSoldToParty   = "Sold-to party"
	ColName1         = "Name 1"
	ColShipToParty   = "Ship-to party"
	ColTicket        = "Ticket"
	ColIDOCDocument  = "IDOC/SD Document"
	ColWorkItemText  = "Work item text"
	ColID            = "ID"
	ColProductCode   = "Product Code"
	ColCommandOrder  = "Command Order No."
	ColTruckType     = "Truck Type"
	ColDate          = "Date"
	ColDeliveryQty   = "Delivery quantity"
	ColBaseUnit      = "Base Unit of Measure"
	ColTicketDate    = "Ticket Date"
	ColLastAgent     = "Actual (last) agent"
	ColObjectType    = "Object Type"
	ColEndDate       = "OK - Actual End Date of Work Item"
	ColStronghold    = "Stronghold"

	// ColCategory is derived during processing, never read from the export.
	ColCategory = "Category"
)

// Columns of the billing-coordinator reference workbook.
const (
	RefColPlant       = "Plant"
	RefColCoordinator = "BILLING COORDINATORS"
	RefColMarket      = "Market Name"
	RefColRegion      = "Region"
	RefColCountry     = "Country"
	RefColStronghold  = "Stronghold"
)

// CoordSuffix disambiguates reference columns whose name collides with an
// incident column after the join.
const CoordSuffix = "_coord"

// Categories derived from task text. The configured vocabulary defines the
// rest; these two are structural.
const (
	CategoryOther     = "Other"
	CategoryInventory = "Inventory"
)

// Columns expected in the ticket export, in sheet order.
var Columns = []string{
	ColTaskText, ColSalesOffice, ColSalesGroup, ColSalesDistrict, ColPlant,
	ColSoldToParty, ColName1, ColShipToParty, ColTicket, ColIDOCDocument,
	ColWorkItemText, ColID, ColProductCode, ColCommandOrder, ColTruckType,
	ColDate, ColDeliveryQty, ColBaseUnit, ColTicketDate, ColLastAgent,
	ColObjectType, ColEndDate, ColStronghold,
}

// RefColumns expected in the reference workbook, in sheet order.
var RefColumns = []string{
	RefColPlant, RefColCoordinator, RefColMarket, RefColRegion,
	RefColCountry, RefColStronghold,
}

// Record is one row of the raw ticket export. String fields keep the cell
// text as loaded; Plant and the two work-item dates additionally carry a
// parsed form (nil when the cell is not numeric).
type Record struct {
	TaskText      string
	SalesOffice   string
	SalesGroup    string
	SalesDistrict string
	PlantRaw      string
	Plant         *int64
	SoldToParty   string
	Name1         string
	ShipToParty   string
	Ticket        string
	IDOCDocument  string
	WorkItemText  string
	ID            string
	ProductCode   string
	CommandOrder  string
	TruckType     string
	StartRaw      string
	StartSerial   *float64
	QtyRaw        string
	DeliveryQty   *float64
	BaseUnit      string
	TicketDate    string
	LastAgent     string
	ObjectType    string
	EndRaw        string
	EndSerial     *float64
	Stronghold    string
}

// Set assigns one cell to the field backing col. Unknown columns are
// ignored.
func (r *Record) Set(col, raw string) {
	switch col {
	case ColTaskText:
		r.TaskText = raw
	case ColSalesOffice:
		r.SalesOffice = raw
	case ColSalesGroup:
		r.SalesGroup = raw
	case ColSalesDistrict:
		r.SalesDistrict = raw
	case ColPlant:
		r.PlantRaw = raw
		r.Plant = parseIntCell(raw)
	case ColSoldToParty:
		r.SoldToParty = raw
	case ColName1:
		r.Name1 = raw
	case ColShipToParty:
		r.ShipToParty = raw
	case ColTicket:
		r.Ticket = raw
	case ColIDOCDocument:
		r.IDOCDocument = raw
	case ColWorkItemText:
		r.WorkItemText = raw
	case ColID:
		r.ID = raw
	case ColProductCode:
		r.ProductCode = raw
	case ColCommandOrder:
		r.CommandOrder = raw
	case ColTruckType:
		r.TruckType = raw
	case ColDate:
		r.StartRaw = raw
		r.StartSerial = parseFloatCell(raw)
	case ColDeliveryQty:
		r.QtyRaw = raw
		r.DeliveryQty = parseFloatCell(raw)
	case ColBaseUnit:
		r.BaseUnit = raw
	case ColTicketDate:
		r.TicketDate = raw
	case ColLastAgent:
		r.LastAgent = raw
	case ColObjectType:
		r.ObjectType = raw
	case ColEndDate:
		r.EndRaw = raw
		r.EndSerial = parseFloatCell(raw)
	case ColStronghold:
		r.Stronghold = raw
	}
}

// Value renders the cell backing col, as loaded.
func (r *Record) Value(col string) (string, bool) {
	switch col {
	case ColTaskText:
		return r.TaskText, true
	case ColSalesOffice:
		return r.SalesOffice, true
	case ColSalesGroup:
		return r.SalesGroup, true
	case ColSalesDistrict:
		return r.SalesDistrict, true
	case ColPlant:
		return r.PlantRaw, true
	case ColSoldToParty:
		return r.SoldToParty, true
	case ColName1:
		return r.Name1, true
	case ColShipToParty:
		return r.ShipToParty, true
	case ColTicket:
		return r.Ticket, true
	case ColIDOCDocument:
		return r.IDOCDocument, true
	case ColWorkItemText:
		return r.WorkItemText, true
	case ColID:
		return r.ID, true
	case ColProductCode:
		return r.ProductCode, true
	case ColCommandOrder:
		return r.CommandOrder, true
	case ColTruckType:
		return r.TruckType, true
	case ColDate:
		return r.StartRaw, true
	case ColDeliveryQty:
		return r.QtyRaw, true
	case ColBaseUnit:
		return r.BaseUnit, true
	case ColTicketDate:
		return r.TicketDate, true
	case ColLastAgent:
		return r.LastAgent, true
	case ColObjectType:
		return r.ObjectType, true
	case ColEndDate:
		return r.EndRaw, true
	case ColStronghold:
		return r.Stronghold, true
	}
	return "", false
}

// Dataset is a loaded ticket export. Columns lists only the expected
// columns actually present in the sheet, so downstream steps can degrade
// when one is missing instead of failing the run.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// Has reports whether col was present in the loaded sheet.
func (d *Dataset) Has(col string) bool {
	for _, c := range d.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Coordinator is one row of the billing-coordinator reference table.
type Coordinator struct {
	PlantRaw   string
	Plant      *int64
	Name       string
	Market     string
	Region     string
	Country    string
	Stronghold string
}

// Set assigns one reference cell to the field backing col.
func (c *Coordinator) Set(col, raw string) {
	switch col {
	case RefColPlant:
		c.PlantRaw = raw
		c.Plant = parseIntCell(raw)
	case RefColCoordinator:
		c.Name = raw
	case RefColMarket:
		c.Market = raw
	case RefColRegion:
		c.Region = raw
	case RefColCountry:
		c.Country = raw
	case RefColStronghold:
		c.Stronghold = raw
	}
}

// RefTable is a loaded reference workbook.
type RefTable struct {
	Columns []string
	Rows    []Coordinator
}

// Has reports whether col was present in the reference workbook.
func (t *RefTable) Has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Enriched is an incident joined with its coordinator row plus the derived
// category. It exists only for incidents whose plant matched a reference
// row.
type Enriched struct {
	Record
	Coordinator   string
	Market        string
	Region        string
	Country       string
	RefStronghold string
	Category      string
}

// Value renders any post-join column, including suffixed reference columns
// and the derived Category.
func (e *Enriched) Value(col string) (string, bool) {
	if v, ok := e.Record.Value(col); ok {
		return v, true
	}
	switch col {
	case ColCategory:
		return e.Category, true
	case RefColCoordinator:
		return e.Coordinator, true
	case RefColMarket:
		return e.Market, true
	case RefColRegion:
		return e.Region, true
	case RefColCountry:
		return e.Country, true
	case RefColStronghold + CoordSuffix:
		// The incident side owns the bare name; the reference copy is
		// only reachable through the suffix.
		return e.RefStronghold, true
	}
	return "", false
}

// EnrichedSet is the joined table. Columns carries the merged header:
// incident columns, then reference columns with collisions suffixed.
type EnrichedSet struct {
	Columns []string
	Rows    []Enriched
}

// Has reports whether col is part of the joined table.
func (s *EnrichedSet) Has(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// serialEpoch anchors the export's day-count date serials.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// SerialDate converts a day-count serial into a calendar date. Nil in,
// nil out.
func SerialDate(serial *float64) *time.Time {
	if serial == nil {
		return nil
	}
	t := serialEpoch.AddDate(0, 0, int(*serial))
	return &t
}

// DaysSpent is the whole-day span between the start and end serials.
// Missing or negative spans floor to 0, they are never discarded.
func DaysSpent(start, end *float64) int {
	s, e := SerialDate(start), SerialDate(end)
	if s == nil || e == nil {
		return 0
	}
	d := int(e.Sub(*s).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func parseFloatCell(raw string) *float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntCell(raw string) *int64 {
	// Numeric cells may come back as "1001" or "1001.0" depending on the
	// workbook's formatting.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	n := int64(f)
	return &n
}

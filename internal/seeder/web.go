package seeder

import (
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

const (
	TableUsers          = "Users"
	TableSessions       = "Sessions"
	TableTrafficSources = "Traffic_Sources"
	TablePages          = "Pages"
	TableConversions    = "Conversions"
	TableTransactions   = "Transactions"

	// PagesPerSession sizes the Pages table relative to Sessions.
	PagesPerSession = 3
)

var (
	ageGroups        = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	genders          = []string{"Male", "Female"}
	devices          = []string{"Mobile", "Desktop", "Tablet"}
	operatingSystems = []string{"Windows", "iOS", "Android", "MacOS"}
	trafficSources   = []string{"Google", "Facebook", "Twitter", "Email Campaign", "Direct"}
	trafficMediums   = []string{"Organic", "Paid", "Social", "Referral"}
	goalTypes        = []string{"Sign-up", "Purchase", "Newsletter Subscription", "Download"}
)

// WebParams sizes the web-analytics tables.
type WebParams struct {
	Users        int
	Sessions     int
	Conversions  int
	Transactions int
}

// WebDomain describes the web-analytics dataset: users, their sessions, the
// traffic source and pages of each session, conversions and transactions.
func WebDomain(p WebParams) *Domain {
	return &Domain{
		Name: "web",
		Tables: []*TableInfo{
			{
				Name:    TableUsers,
				Key:     "User_ID",
				Columns: []string{"User_ID", "Age", "Gender", "Location", "Device", "Operating_System"},
				Count:   p.Users,
				NewRow:  userRow,
			},
			{
				Name:         TableSessions,
				Key:          "Session_ID",
				Columns:      []string{"Session_ID", "User_ID", "Start_Time", "End_Time", "Session_Duration", "Bounce_Rate", "Pages_per_Session"},
				Count:        p.Sessions,
				Dependencies: []string{TableUsers},
				NewRow:       sessionRow,
			},
			{
				Name:         TableTrafficSources,
				Key:          "Source_ID",
				Columns:      []string{"Source_ID", "Session_ID", "Source", "Medium", "Campaign", "Keyword"},
				Count:        p.Sessions,
				Dependencies: []string{TableSessions},
				NewRow:       trafficSourceRow,
			},
			{
				Name:         TablePages,
				Key:          "Page_ID",
				Columns:      []string{"Page_ID", "Session_ID", "Page_URL", "Page_Title", "Pageviews", "Average_Time_on_Page", "Exit_Rate"},
				Count:        p.Sessions * PagesPerSession,
				Dependencies: []string{TableSessions},
				NewRow:       pageRow,
			},
			{
				Name:         TableConversions,
				Key:          "Conversion_ID",
				Columns:      []string{"Conversion_ID", "Session_ID", "Goal_Type", "Goal_Completion", "Goal_Value", "Transaction_ID"},
				Count:        p.Conversions,
				Dependencies: []string{TableSessions},
				NewRow:       conversionRow,
			},
			{
				Name:         TableTransactions,
				Key:          "Transaction_ID",
				Columns:      []string{"Transaction_ID", "Conversion_ID", "Revenue", "Product_ID", "Quantity", "Coupon_Code"},
				Count:        p.Transactions,
				Dependencies: []string{TableConversions},
				NewRow:       transactionRow,
			},
		},
		// Conversions reference transactions, which are generated after them.
		Declared: map[string]types.KeyDomain{
			TableTransactions: {Min: 1, Max: p.Transactions},
		},
	}
}

func userRow(g *DataGenerator, _ *KeyRegistry, id int) (types.Row, error) {
	return types.Row{
		id,
		g.Choice(ageGroups),
		g.Choice(genders),
		g.Country(),
		g.Choice(devices),
		g.Choice(operatingSystems),
	}, nil
}

func sessionRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	userID, err := keys.Pick(g, TableUsers)
	if err != nil {
		return nil, err
	}
	return types.Row{
		id,
		userID,
		g.DateTime(),
		g.DateTime(),
		g.IntRange(30, 600),
		g.RoundedFloat(0, 100, 2),
		g.IntRange(1, 10),
	}, nil
}

// trafficSourceRow attributes exactly one source to each session.
func trafficSourceRow(g *DataGenerator, _ *KeyRegistry, id int) (types.Row, error) {
	return types.Row{
		id,
		id,
		g.Choice(trafficSources),
		g.Choice(trafficMediums),
		g.Nullable(0.5, func() interface{} { return g.Word() }),
		g.Nullable(0.7, func() interface{} { return g.Word() }),
	}, nil
}

func pageRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	sessionID, err := keys.Pick(g, TableSessions)
	if err != nil {
		return nil, err
	}
	return types.Row{
		id,
		sessionID,
		g.URI(),
		g.Sentence(3),
		g.IntRange(1, 20),
		g.IntRange(10, 300),
		g.RoundedFloat(0, 100, 2),
	}, nil
}

func conversionRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	sessionID, err := keys.Pick(g, TableSessions)
	if err != nil {
		return nil, err
	}

	goalValue := 0.0
	if g.Chance(0.5) {
		goalValue = g.RoundedFloat(10, 500, 2)
	}

	var transactionID interface{}
	if g.Chance(0.5) {
		tid, err := keys.Pick(g, TableTransactions)
		if err != nil {
			return nil, err
		}
		transactionID = tid
	}

	return types.Row{
		id,
		sessionID,
		g.Choice(goalTypes),
		g.Bool(),
		goalValue,
		transactionID,
	}, nil
}

func transactionRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	conversionID, err := keys.Pick(g, TableConversions)
	if err != nil {
		return nil, err
	}
	return types.Row{
		id,
		conversionID,
		g.RoundedFloat(20, 2000, 2),
		g.IntRange(1000, 9999),
		g.IntRange(1, 10),
		g.Nullable(0.7, func() interface{} { return g.Code("????-####") }),
	}, nil
}

package seeder

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var couponPattern = regexp.MustCompile(`^[A-Za-z]{4}-[0-9]{4}$`)

func smallWebParams() WebParams {
	return WebParams{Users: 40, Sessions: 120, Conversions: 30, Transactions: 25}
}

func TestWebDomain_RowCounts(t *testing.T) {
	p := smallWebParams()
	tables := generate(t, 1, WebDomain(p))

	expected := map[string]int{
		TableUsers:          p.Users,
		TableSessions:       p.Sessions,
		TableTrafficSources: p.Sessions,
		TablePages:          p.Sessions * PagesPerSession,
		TableConversions:    p.Conversions,
		TableTransactions:   p.Transactions,
	}
	require.Len(t, tables, len(expected))
	for name, n := range expected {
		assert.Equal(t, n, tables[name].Len(), name)
	}
}

func TestWebDomain_KeysAreSequential(t *testing.T) {
	tables := generate(t, 2, WebDomain(smallWebParams()))

	for _, table := range tables {
		for i := 0; i < table.Len(); i++ {
			assert.Equal(t, i+1, intValue(t, table, i, table.Key), table.Name)
		}
	}
}

func TestWebDomain_ForeignKeysWithinReferencedDomain(t *testing.T) {
	p := smallWebParams()
	tables := generate(t, 3, WebDomain(p))

	refs := []struct {
		table, column string
		max           int
	}{
		{TableSessions, "User_ID", p.Users},
		{TablePages, "Session_ID", p.Sessions},
		{TableConversions, "Session_ID", p.Sessions},
		{TableTransactions, "Conversion_ID", p.Conversions},
	}

	for _, ref := range refs {
		table := tables[ref.table]
		for i := 0; i < table.Len(); i++ {
			id := intValue(t, table, i, ref.column)
			assert.True(t, id >= 1 && id <= ref.max, "%s.%s = %d outside 1..%d", ref.table, ref.column, id, ref.max)
		}
	}

	conversions := tables[TableConversions]
	for i := 0; i < conversions.Len(); i++ {
		v := conversions.Value(i, "Transaction_ID")
		if v == nil {
			continue
		}
		id := v.(int)
		assert.True(t, id >= 1 && id <= p.Transactions, "Transaction_ID %d outside 1..%d", id, p.Transactions)
	}
}

func TestWebDomain_TrafficSourcePerSession(t *testing.T) {
	tables := generate(t, 4, WebDomain(smallWebParams()))
	sources := tables[TableTrafficSources]

	for i := 0; i < sources.Len(); i++ {
		assert.Equal(t, intValue(t, sources, i, "Source_ID"), intValue(t, sources, i, "Session_ID"))
	}
}

func TestWebDomain_FieldRanges(t *testing.T) {
	tables := generate(t, 5, WebDomain(smallWebParams()))

	sessions := tables[TableSessions]
	for i := 0; i < sessions.Len(); i++ {
		for _, col := range []string{"Start_Time", "End_Time"} {
			ts, ok := sessions.Value(i, col).(time.Time)
			require.True(t, ok)
			assert.False(t, ts.Before(testStart) || ts.After(testEnd), "%s %s out of range", col, ts)
		}
		assert.InDelta(t, 315, intValue(t, sessions, i, "Session_Duration"), 285)
		bounce := floatValue(t, sessions, i, "Bounce_Rate")
		assert.True(t, bounce >= 0 && bounce <= 100)
		assert.Equal(t, bounce, math.Round(bounce*100)/100)
		assert.InDelta(t, 5.5, intValue(t, sessions, i, "Pages_per_Session"), 4.5)
	}

	pages := tables[TablePages]
	for i := 0; i < pages.Len(); i++ {
		assert.InDelta(t, 10.5, intValue(t, pages, i, "Pageviews"), 9.5)
		assert.InDelta(t, 155, intValue(t, pages, i, "Average_Time_on_Page"), 145)
		assert.NotEmpty(t, pages.Value(i, "Page_URL"))
	}

	conversions := tables[TableConversions]
	for i := 0; i < conversions.Len(); i++ {
		value := floatValue(t, conversions, i, "Goal_Value")
		assert.True(t, value == 0 || (value >= 10 && value <= 500), "Goal_Value %v", value)
		assert.Contains(t, goalTypes, conversions.Value(i, "Goal_Type"))
		_, ok := conversions.Value(i, "Goal_Completion").(bool)
		assert.True(t, ok)
	}

	transactions := tables[TableTransactions]
	for i := 0; i < transactions.Len(); i++ {
		revenue := floatValue(t, transactions, i, "Revenue")
		assert.True(t, revenue >= 20 && revenue <= 2000)
		assert.InDelta(t, 5499.5, intValue(t, transactions, i, "Product_ID"), 4499.5)
		assert.InDelta(t, 5.5, intValue(t, transactions, i, "Quantity"), 4.5)
		if code := transactions.Value(i, "Coupon_Code"); code != nil {
			assert.Regexp(t, couponPattern, code)
		}
	}
}

func TestWebDomain_NullableColumnsMixNullsAndValues(t *testing.T) {
	tables := generate(t, 6, WebDomain(WebParams{Users: 10, Sessions: 2000, Conversions: 2000, Transactions: 2000}))

	cases := []struct {
		table, column string
	}{
		{TableTrafficSources, "Campaign"},
		{TableTrafficSources, "Keyword"},
		{TableConversions, "Transaction_ID"},
		{TableTransactions, "Coupon_Code"},
	}

	for _, tc := range cases {
		t.Run(tc.table+"."+tc.column, func(t *testing.T) {
			table := tables[tc.table]
			nulls := 0
			for i := 0; i < table.Len(); i++ {
				if table.Value(i, tc.column) == nil {
					nulls++
				}
			}
			assert.Greater(t, nulls, 0)
			assert.Less(t, nulls, table.Len())
		})
	}
}

func TestWebDomain_GoalValueIsZeroForAboutHalf(t *testing.T) {
	tables := generate(t, 8, WebDomain(WebParams{Users: 10, Sessions: 10, Conversions: 2000}))
	conversions := tables[TableConversions]

	zeros := 0
	for i := 0; i < conversions.Len(); i++ {
		if floatValue(t, conversions, i, "Goal_Value") == 0 {
			zeros++
		}
	}
	assert.InDelta(t, 1000, zeros, 150)
}

func TestWebDomain_SessionsWithoutUsersFail(t *testing.T) {
	s, _ := newTestSeeder(t, 7)
	_, err := s.Generate(t.Context(), WebDomain(WebParams{Users: 0, Sessions: 5}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyKeyDomain)
}

package seeder

import (
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

const (
	TableEngagementMetrics    = "organic_engagement_metrics"
	TableAudienceDemographics = "audience_demographics"
	TablePaidAdMetrics        = "paid_ad_metrics"
	TableCampaignMetrics      = "campaign_performance_metrics"
	TablePostLevelData        = "post_level_data"
	TableFollowersData        = "followers_data"
	TableContentDetails       = "content_details"

	// DomainAds is the declared id range of ads; ads have no table of their own.
	DomainAds = "ads"

	// SocialMaxRows caps the per-table row count of the social dataset.
	SocialMaxRows = 5_000_000
)

var (
	industries   = []string{"Tech", "Finance", "Healthcare", "Education", "Retail"}
	jobTitles    = []string{"Engineer", "Manager", "Analyst", "Sales", "Developer"}
	seniority    = []string{"Entry", "Mid", "Senior", "Lead", "Director"}
	jobFunctions = []string{"IT", "Sales", "Marketing", "Operations", "HR"}
	companySizes = []string{"Small", "Medium", "Large"}
	contentTypes = []string{"Article", "Video", "Image"}
)

// SocialDomain describes the social-media dataset. Every table has n rows.
func SocialDomain(n int) *Domain {
	return &Domain{
		Name:    "social",
		MaxRows: SocialMaxRows,
		Tables: []*TableInfo{
			{
				Name: TableEngagementMetrics,
				Key:  "metric_id",
				Columns: []string{"metric_id", "post_id", "impressions", "reach", "clicks", "ctr",
					"likes", "comments", "shares", "engagement_rate", "video_views", "average_watch_time"},
				Count:        n,
				Dependencies: []string{TablePostLevelData},
				NewRow:       engagementMetricRow,
			},
			{
				Name: TableAudienceDemographics,
				Key:  "demographic_id",
				Columns: []string{"demographic_id", "metric_id", "location", "industry", "job_title",
					"seniority_level", "function", "company_size"},
				Count:        n,
				Dependencies: []string{TableEngagementMetrics},
				NewRow:       audienceDemographicRow,
			},
			{
				Name: TablePaidAdMetrics,
				Key:  "ad_metric_id",
				Columns: []string{"ad_metric_id", "ad_id", "ad_impressions", "reach", "clicks", "ctr",
					"engagement_rate", "cost_per_click", "cost_per_mille", "conversions", "cost_per_conversion"},
				Count:  n,
				NewRow: paidAdMetricRow,
			},
			{
				Name:         TableCampaignMetrics,
				Key:          "campaign_id",
				Columns:      []string{"campaign_id", "ad_metric_id", "budget_spent", "total_engagements", "frequency"},
				Count:        n,
				Dependencies: []string{TablePaidAdMetrics},
				NewRow:       campaignMetricRow,
			},
			{
				Name: TablePostLevelData,
				Key:  "post_id",
				Columns: []string{"post_id", "content_id", "post_impressions", "post_reach", "post_clicks",
					"post_ctr", "post_engagement_rate", "likes", "video_views"},
				Count:        n,
				Dependencies: []string{TableContentDetails},
				NewRow:       postLevelRow,
			},
			{
				Name:         TableFollowersData,
				Key:          "follower_id",
				Columns:      []string{"follower_id", "total_followers", "growth_rate", "demographic_id"},
				Count:        n,
				Dependencies: []string{TableAudienceDemographics},
				NewRow:       followersRow,
			},
			{
				Name:    TableContentDetails,
				Key:     "content_id",
				Columns: []string{"content_id", "content_type", "title", "created_date"},
				Count:   n,
				NewRow:  contentDetailsRow,
			},
		},
		Declared: map[string]types.KeyDomain{
			DomainAds: {Min: 1, Max: n},
		},
	}
}

func engagementMetricRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	postID, err := keys.Pick(g, TablePostLevelData)
	if err != nil {
		return nil, err
	}
	impressions := g.IntRange(1000, 50000)
	reach := g.IntRange(500, impressions)
	clicks := g.IntRange(0, reach)
	likes := g.IntRange(0, reach)
	comments := g.IntRange(0, reach/10)
	shares := g.IntRange(0, reach/10)
	videoViews := g.IntRange(0, reach)

	return types.Row{
		id,
		postID,
		impressions,
		reach,
		clicks,
		ClickThroughRate(clicks, impressions),
		likes,
		comments,
		shares,
		EngagementRate(likes, comments, shares, impressions),
		videoViews,
		g.RoundedFloat(1.0, 5.0, 2),
	}, nil
}

func audienceDemographicRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	metricID, err := keys.Pick(g, TableEngagementMetrics)
	if err != nil {
		return nil, err
	}
	return types.Row{
		id,
		metricID,
		g.City(),
		g.Choice(industries),
		g.Choice(jobTitles),
		g.Choice(seniority),
		g.Choice(jobFunctions),
		g.Choice(companySizes),
	}, nil
}

func paidAdMetricRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	adID, err := keys.Pick(g, DomainAds)
	if err != nil {
		return nil, err
	}
	impressions := g.IntRange(1000, 50000)
	reach := g.IntRange(500, impressions)
	clicks := g.IntRange(0, reach)
	ctr := ClickThroughRate(clicks, impressions)
	engagementRate := g.FloatRange(0.1, 0.5)
	costPerClick := g.FloatRange(0.1, 5.0)
	conversions := g.IntRange(0, clicks)

	return types.Row{
		id,
		adID,
		impressions,
		reach,
		clicks,
		ctr,
		engagementRate,
		costPerClick,
		CostPerMille(costPerClick, ctr),
		conversions,
		CostPerConversion(costPerClick, conversions),
	}, nil
}

func campaignMetricRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	adMetricID, err := keys.Pick(g, TablePaidAdMetrics)
	if err != nil {
		return nil, err
	}
	return types.Row{
		id,
		adMetricID,
		g.FloatRange(100, 5000),
		g.IntRange(0, 50000),
		g.FloatRange(1.0, 10.0),
	}, nil
}

func postLevelRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	contentID, err := keys.Pick(g, TableContentDetails)
	if err != nil {
		return nil, err
	}
	impressions := g.IntRange(1000, 50000)
	reach := g.IntRange(500, impressions)
	clicks := g.IntRange(0, reach)
	ctr := ClickThroughRate(clicks, impressions)
	engagementRate := g.FloatRange(0.1, 0.5)

	return types.Row{
		id,
		contentID,
		impressions,
		reach,
		clicks,
		ctr,
		engagementRate,
		g.IntRange(0, reach),
		g.IntRange(0, reach),
	}, nil
}

func followersRow(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error) {
	totalFollowers := g.IntRange(1000, 100000)
	growthRate := g.FloatRange(-0.1, 0.1)
	demographicID, err := keys.Pick(g, TableAudienceDemographics)
	if err != nil {
		return nil, err
	}
	return types.Row{
		id,
		totalFollowers,
		growthRate,
		demographicID,
	}, nil
}

func contentDetailsRow(g *DataGenerator, _ *KeyRegistry, id int) (types.Row, error) {
	return types.Row{
		id,
		g.Choice(contentTypes),
		g.Sentence(6),
		g.Date(),
	}, nil
}

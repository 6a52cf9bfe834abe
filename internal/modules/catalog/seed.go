package catalog

// SeedEntry describes one fund in the built-in universe: the static
// metadata that never changes between refreshes.
type SeedEntry struct {
	Ticker    string
	Name      string
	RiskLevel int
	Category  Category
}

// SeedUniverse is the built-in ETF universe, spanning all twelve
// categories. Statistics for these funds are produced by the Generator;
// a CSV import can replace or extend the universe entirely.
var SeedUniverse = []SeedEntry{
	// Dividend-focused
	{"SCHD", "Schwab U.S. Dividend Equity ETF", 3, CategoryDividend},
	{"VIG", "Vanguard Dividend Appreciation ETF", 3, CategoryDividend},
	{"VYM", "Vanguard High Dividend Yield ETF", 3, CategoryDividend},
	{"DVY", "iShares Select Dividend ETF", 4, CategoryDividend},
	{"NOBL", "ProShares S&P 500 Dividend Aristocrats ETF", 3, CategoryDividend},
	{"HDV", "iShares Core High Dividend ETF", 3, CategoryDividend},
	{"SPYD", "SPDR Portfolio S&P 500 High Dividend ETF", 4, CategoryDividend},
	{"DGRO", "iShares Core Dividend Growth ETF", 3, CategoryDividend},

	// Covered call
	{"QYLD", "Global X NASDAQ 100 Covered Call ETF", 4, CategoryCoveredCall},
	{"XYLD", "Global X S&P 500 Covered Call ETF", 4, CategoryCoveredCall},
	{"JEPI", "JPMorgan Equity Premium Income ETF", 4, CategoryCoveredCall},
	{"JEPQ", "JPMorgan Nasdaq Equity Premium Income ETF", 4, CategoryCoveredCall},
	{"DIVO", "Amplify CWP Enhanced Dividend Income ETF", 4, CategoryCoveredCall},

	// Bonds
	{"BND", "Vanguard Total Bond Market ETF", 2, CategoryBond},
	{"AGG", "iShares Core U.S. Aggregate Bond ETF", 2, CategoryBond},
	{"TIP", "iShares TIPS Bond ETF", 2, CategoryBond},
	{"LQD", "iShares iBoxx $ Investment Grade Corporate Bond ETF", 3, CategoryBond},
	{"HYG", "iShares iBoxx $ High Yield Corporate Bond ETF", 4, CategoryBond},
	{"TLT", "iShares 20+ Year Treasury Bond ETF", 3, CategoryBond},
	{"SHY", "iShares 1-3 Year Treasury Bond ETF", 1, CategoryBond},
	{"SGOV", "iShares 0-3 Month Treasury Bond ETF", 1, CategoryBond},

	// Large cap
	{"VOO", "Vanguard S&P 500 ETF", 5, CategoryLargeCap},
	{"SPY", "SPDR S&P 500 ETF Trust", 5, CategoryLargeCap},
	{"VTI", "Vanguard Total Stock Market ETF", 6, CategoryLargeCap},
	{"QQQ", "Invesco QQQ Trust", 6, CategoryLargeCap},
	{"SCHX", "Schwab U.S. Large-Cap ETF", 5, CategoryLargeCap},

	// Mid cap
	{"IJH", "iShares Core S&P Mid-Cap ETF", 6, CategoryMidCap},
	{"MDY", "SPDR S&P MidCap 400 ETF Trust", 6, CategoryMidCap},
	{"VO", "Vanguard Mid-Cap ETF", 6, CategoryMidCap},

	// Small cap
	{"VB", "Vanguard Small-Cap ETF", 6, CategorySmallCap},
	{"IJR", "iShares Core S&P Small-Cap ETF", 6, CategorySmallCap},
	{"SCHA", "Schwab U.S. Small-Cap ETF", 6, CategorySmallCap},

	// Sector
	{"XLU", "Utilities Select Sector SPDR Fund", 3, CategorySector},
	{"XLP", "Consumer Staples Select Sector SPDR Fund", 4, CategorySector},
	{"XLV", "Health Care Select Sector SPDR Fund", 5, CategorySector},
	{"XLF", "Financial Select Sector SPDR Fund", 6, CategorySector},
	{"XLE", "Energy Select Sector SPDR Fund", 6, CategorySector},

	// Real estate
	{"VNQ", "Vanguard Real Estate ETF", 5, CategoryRealEstate},
	{"SCHH", "Schwab U.S. REIT ETF", 5, CategoryRealEstate},
	{"XLRE", "Real Estate Select Sector SPDR Fund", 5, CategoryRealEstate},

	// International
	{"VEA", "Vanguard FTSE Developed Markets ETF", 5, CategoryInternational},
	{"VXUS", "Vanguard Total International Stock ETF", 6, CategoryInternational},
	{"EFA", "iShares MSCI EAFE ETF", 5, CategoryInternational},
	{"EWJ", "iShares MSCI Japan ETF", 5, CategoryInternational},

	// Commodities
	{"GLD", "SPDR Gold Shares", 2, CategoryCommodity},
	{"SLV", "iShares Silver Trust", 3, CategoryCommodity},
	{"DBC", "Invesco DB Commodity Index Tracking Fund", 4, CategoryCommodity},

	// Low volatility
	{"USMV", "iShares MSCI USA Min Vol Factor ETF", 3, CategoryLowVolatility},
	{"SPLV", "Invesco S&P 500 Low Volatility ETF", 3, CategoryLowVolatility},
	{"LVHD", "Franklin U.S. Low Volatility High Dividend ETF", 3, CategoryLowVolatility},

	// Growth
	{"VUG", "Vanguard Growth ETF", 6, CategoryGrowth},
	{"SCHG", "Schwab U.S. Large-Cap Growth ETF", 6, CategoryGrowth},
	{"ARKK", "ARK Innovation ETF", 7, CategoryGrowth},
	{"XLK", "Technology Select Sector SPDR Fund", 6, CategoryGrowth},
	{"TQQQ", "ProShares UltraPro QQQ", 8, CategoryGrowth},
}

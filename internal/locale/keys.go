package locale

// Key identifies a localized string template.
type Key string

// Dashboard keys.
const (
	KeyAppTitle      Key = "app.title"
	KeyNavDashboard  Key = "nav.dashboard"
	KeyNavStats      Key = "nav.stats"
	KeyBtnRefresh    Key = "btn.refresh"
	KeyBtnSearch     Key = "btn.search"
	KeyBtnReset      Key = "btn.reset"
	KeyTitleFilters  Key = "title.filters"
	KeyDescFilters   Key = "desc.filters"
	KeyTitleList     Key = "title.list"
	KeyDescList      Key = "desc.list"
	KeyTitleTrend    Key = "title.trend"
	KeyDescTrend     Key = "desc.trend"
	KeyTitleNews     Key = "title.news"
	KeyLabelCity     Key = "label.city"
	KeyLabelRegion   Key = "label.region"
	KeyLabelBiz      Key = "label.bizcircle"
	KeyLabelComm     Key = "label.community"
	KeyLabelLayout   Key = "label.layout"
	KeyLabelPageSize Key = "label.page_size"
	KeyPhRegion      Key = "ph.region"
	KeyPhBiz         Key = "ph.bizcircle"
	KeyPhComm        Key = "ph.community"
	KeyPhLayout      Key = "ph.layout"
	KeyThBiz         Key = "th.bizcircle"
	KeyThComm        Key = "th.community"
	KeyThLayout      Key = "th.layout"
	KeyThArea        Key = "th.area"
	KeyThUnit        Key = "th.unit"
	KeyThTotal       Key = "th.total"
	KeyThDealDate    Key = "th.dealdate"
	KeyThDetail      Key = "th.detail"
	KeyChipConnected Key = "chip.connected"
	KeyMetaReady     Key = "meta.ready"
	KeyMetaLoading   Key = "meta.loading"
	KeyMetaDone      Key = "meta.done"
	KeyMetaFail      Key = "meta.fail"
	KeyEmptyList     Key = "empty.list"
	KeyEmptyTrend    Key = "empty.trend"
	KeyEmptyNews     Key = "empty.news"
	KeyAbout         Key = "about.text"
	KeyModalTitle    Key = "modal.title"
	KeyOpenLink      Key = "link.open"
	KeyToastNeedCity Key = "toast.need_city"
	KeyToastReset    Key = "toast.reset"
	KeyToastParse    Key = "toast.parse_fail"
	KeyToastNoLink   Key = "toast.no_link"
	KeyToastOpened   Key = "toast.link_opened"
	KeyBadgeAPIOK    Key = "badge.api_ok"
	KeyBadgeAPIBad   Key = "badge.api_bad"
	KeyBadgeCities   Key = "badge.cities"
	KeyPager         Key = "pager"
	KeyTrendAvgTotal Key = "trend.avg_total"
	KeyTrendSamples  Key = "trend.samples"
	KeyUnitSuffix    Key = "trend.unit_suffix"
	KeyTotalSuffix   Key = "total.suffix"
	KeyTrendFail     Key = "trend.fail"
	KeyNewsFetched   Key = "news.fetched"
	KeyNewsSource    Key = "news.source"
	KeyNewsFail      Key = "news.fail"
)

// Detail view labels.
const (
	KeyDetailCommunity Key = "detail.community"
	KeyDetailBiz       Key = "detail.bizcircle"
	KeyDetailLayout    Key = "detail.layout"
	KeyDetailArea      Key = "detail.area_sqm"
	KeyDetailUnit      Key = "detail.unit_price"
	KeyDetailTotal     Key = "detail.total_price"
	KeyDetailOrient    Key = "detail.orientation"
	KeyDetailYear      Key = "detail.building_year"
	KeyDetailFloor     Key = "detail.floor"
	KeyDetailDealDate  Key = "detail.deal_date"
	KeyDetailCrawled   Key = "detail.crawl_time"
	KeyDetailURL       Key = "detail.detail_url"
)

// Statistics screen keys.
const (
	KeyStatTitle         Key = "stat.title"
	KeyStatModeSingle    Key = "stat.mode_single"
	KeyStatModeCompare   Key = "stat.mode_compare"
	KeyStatStart         Key = "stat.start"
	KeyStatEnd           Key = "stat.end"
	KeyStatAllBiz        Key = "stat.all_bizcircles"
	KeyStatNeedCity      Key = "stat.need_city"
	KeyStatRangeInvalid  Key = "stat.range_invalid"
	KeyStatQueryFail     Key = "stat.query_fail"
	KeyStatLoadFail      Key = "stat.load_fail"
	KeyStatCompareFail   Key = "stat.compare_fail"
	KeyStatNeedCities    Key = "stat.need_cities"
	KeyStatNeedBiz       Key = "stat.need_bizcircles"
	KeyStatLoaded        Key = "stat.loaded"
	KeyStatCompareLoaded Key = "stat.compare_loaded"
	KeyStatDescSingle    Key = "stat.desc_single"
	KeyStatDescCompare   Key = "stat.desc_compare"
	KeyStatByCities      Key = "stat.by_cities"
	KeyStatByBiz         Key = "stat.by_bizcircles"
	KeyStatEmpty         Key = "stat.empty"
	KeyStatExported      Key = "stat.exported"
	KeyChartBar          Key = "chart.bar"
	KeyChartLine         Key = "chart.line"
	KeyChartBand         Key = "chart.band"
	KeyCompareBar        Key = "compare.bar"
	KeyCompareLine       Key = "compare.line"
	KeyCompareTotal      Key = "compare.total"
	KeyCompareBand       Key = "compare.band"
	KeySeriesAvgUnit     Key = "series.avg_unit"
	KeySeriesAvgTotal    Key = "series.avg_total"
	KeySeriesUpper       Key = "series.upper"
	KeySeriesMean        Key = "series.mean"
	KeySeriesLower       Key = "series.lower"
	KeySeriesUpperOf     Key = "series.upper_of"
	KeySeriesLowerOf     Key = "series.lower_of"
	KeyColYearMonth      Key = "col.year_month"
	KeyColAvgUnit        Key = "col.avg_unit"
	KeyColAvgTotal       Key = "col.avg_total"
	KeyColCount          Key = "col.count"
	KeyColUnit           Key = "col.unit"
	KeyColTotal          Key = "col.total"
	KeyViewBar           Key = "view.bar"
	KeyViewLine          Key = "view.line"
	KeyViewBand          Key = "view.band"
	KeyViewTable         Key = "view.table"
	KeyViewTotal         Key = "view.total"
)

// Intro splash keys.
const (
	KeySplashInit  Key = "splash.init"
	KeySplashLoad  Key = "splash.load"
	KeySplashIndex Key = "splash.index"
	KeySplashReady Key = "splash.ready"
	KeySplashSkip  Key = "splash.skip"
)

// AllKeys lists every key with a template.
var AllKeys = []Key{
	KeyAppTitle, KeyNavDashboard, KeyNavStats, KeyBtnRefresh, KeyBtnSearch, KeyBtnReset,
	KeyTitleFilters, KeyDescFilters, KeyTitleList, KeyDescList, KeyTitleTrend, KeyDescTrend, KeyTitleNews,
	KeyLabelCity, KeyLabelRegion, KeyLabelBiz, KeyLabelComm, KeyLabelLayout, KeyLabelPageSize,
	KeyPhRegion, KeyPhBiz, KeyPhComm, KeyPhLayout,
	KeyThBiz, KeyThComm, KeyThLayout, KeyThArea, KeyThUnit, KeyThTotal, KeyThDealDate, KeyThDetail,
	KeyChipConnected, KeyMetaReady, KeyMetaLoading, KeyMetaDone, KeyMetaFail,
	KeyEmptyList, KeyEmptyTrend, KeyEmptyNews, KeyAbout, KeyModalTitle, KeyOpenLink,
	KeyToastNeedCity, KeyToastReset, KeyToastParse, KeyToastNoLink, KeyToastOpened,
	KeyBadgeAPIOK, KeyBadgeAPIBad, KeyBadgeCities, KeyPager,
	KeyTrendAvgTotal, KeyTrendSamples, KeyUnitSuffix, KeyTotalSuffix, KeyTrendFail,
	KeyNewsFetched, KeyNewsSource, KeyNewsFail,
	KeyDetailCommunity, KeyDetailBiz, KeyDetailLayout, KeyDetailArea, KeyDetailUnit, KeyDetailTotal,
	KeyDetailOrient, KeyDetailYear, KeyDetailFloor, KeyDetailDealDate, KeyDetailCrawled, KeyDetailURL,
	KeyStatTitle, KeyStatModeSingle, KeyStatModeCompare, KeyStatStart, KeyStatEnd, KeyStatAllBiz,
	KeyStatNeedCity, KeyStatRangeInvalid, KeyStatQueryFail, KeyStatLoadFail, KeyStatCompareFail,
	KeyStatNeedCities, KeyStatNeedBiz, KeyStatLoaded, KeyStatCompareLoaded,
	KeyStatDescSingle, KeyStatDescCompare, KeyStatByCities, KeyStatByBiz, KeyStatEmpty, KeyStatExported,
	KeyChartBar, KeyChartLine, KeyChartBand, KeyCompareBar, KeyCompareLine, KeyCompareTotal, KeyCompareBand,
	KeySeriesAvgUnit, KeySeriesAvgTotal, KeySeriesUpper, KeySeriesMean, KeySeriesLower,
	KeySeriesUpperOf, KeySeriesLowerOf,
	KeyColYearMonth, KeyColAvgUnit, KeyColAvgTotal, KeyColCount, KeyColUnit, KeyColTotal,
	KeyViewBar, KeyViewLine, KeyViewBand, KeyViewTable, KeyViewTotal,
	KeySplashInit, KeySplashLoad, KeySplashIndex, KeySplashReady, KeySplashSkip,
}

package locale

import (
	"fmt"
	"strings"
)

// Vars are named placeholder values for T.
type Vars map[string]any

var catalogs = map[Variant]map[Key]string{
	Hans: {
		KeyAppTitle:      "HPQAQ · 房价看板",
		KeyNavDashboard:  "看板",
		KeyNavStats:      "统计",
		KeyBtnRefresh:    "刷新",
		KeyBtnSearch:     "查询",
		KeyBtnReset:      "重置",
		KeyTitleFilters:  "查询条件",
		KeyDescFilters:   "选择城市后可按商圈/小区/户型精确筛选",
		KeyTitleList:     "成交列表",
		KeyDescList:      "回车查看中文详情；o 打开详情链接",
		KeyTitleTrend:    "价格趋势",
		KeyDescTrend:     "按月聚合成交日期：均价（元/㎡）与样本数",
		KeyTitleNews:     "房产快讯",
		KeyLabelCity:     "城市",
		KeyLabelRegion:   "区域",
		KeyLabelBiz:      "商圈",
		KeyLabelComm:     "小区",
		KeyLabelLayout:   "户型",
		KeyLabelPageSize: "每页",
		KeyPhRegion:      "（可选）例如：浦东 / 海淀",
		KeyPhBiz:         "（可选）例如：北蔡 / 中关村",
		KeyPhComm:        "（可选）例如：由由四村",
		KeyPhLayout:      "（可选）例如：2室1厅",
		KeyThBiz:         "商圈",
		KeyThComm:        "小区",
		KeyThLayout:      "户型",
		KeyThArea:        "面积(㎡)",
		KeyThUnit:        "单价(元/㎡)",
		KeyThTotal:       "总价(万)",
		KeyThDealDate:    "成交日期",
		KeyThDetail:      "详情",
		KeyChipConnected: "数据接口已连接",
		KeyMetaReady:     "准备就绪",
		KeyMetaLoading:   "加载中…",
		KeyMetaDone:      "完成：共 {n} 条",
		KeyMetaFail:      "加载失败",
		KeyEmptyList:     "暂无数据",
		KeyEmptyTrend:    "暂无趋势数据",
		KeyEmptyNews:     "暂无快讯",
		KeyAbout:         "房产成交数据查询与趋势分析",
		KeyModalTitle:    "记录详情",
		KeyOpenLink:      "打开详情链接",
		KeyToastNeedCity: "请先选择城市",
		KeyToastReset:    "已重置筛选条件",
		KeyToastParse:    "解析记录失败",
		KeyToastNoLink:   "该记录没有详情链接",
		KeyToastOpened:   "已在浏览器打开",
		KeyBadgeAPIOK:    "API：OK",
		KeyBadgeAPIBad:   "API：异常",
		KeyBadgeCities:   "城市：{names}",
		KeyPager:         "第 {p} / {m} 页",
		KeyTrendAvgTotal: "均总价（万）：{v}",
		KeyTrendSamples:  "样本",
		KeyUnitSuffix:    "元/㎡",
		KeyTotalSuffix:   "万",
		KeyTrendFail:     "趋势加载失败：{err}",
		KeyNewsFetched:   "更新于 {ago}",
		KeyNewsSource:    "来源：{url}",
		KeyNewsFail:      "快讯加载失败：{err}",

		KeyDetailCommunity: "小区",
		KeyDetailBiz:       "商圈",
		KeyDetailLayout:    "户型",
		KeyDetailArea:      "面积(㎡)",
		KeyDetailUnit:      "单价",
		KeyDetailTotal:     "总价",
		KeyDetailOrient:    "朝向",
		KeyDetailYear:      "建成年份",
		KeyDetailFloor:     "楼层",
		KeyDetailDealDate:  "成交日期",
		KeyDetailCrawled:   "抓取时间",
		KeyDetailURL:       "详情链接",

		KeyStatTitle:         "历史均价统计",
		KeyStatModeSingle:    "单项查询",
		KeyStatModeCompare:   "对比分析",
		KeyStatStart:         "起始月份",
		KeyStatEnd:           "结束月份",
		KeyStatAllBiz:        "（全部商圈）",
		KeyStatNeedCity:      "请先选择城市",
		KeyStatRangeInvalid:  "起始时间不能晚于结束时间",
		KeyStatQueryFail:     "查询失败",
		KeyStatLoadFail:      "查询历史均价失败",
		KeyStatCompareFail:   "加载对比数据失败",
		KeyStatNeedCities:    "请至少选择 2 个城市进行对比",
		KeyStatNeedBiz:       "请至少选择 2 个商圈进行对比",
		KeyStatLoaded:        "已加载 {scope} 的历史均价数据",
		KeyStatCompareLoaded: "已加载 {n} 个地区的对比数据",
		KeyStatDescSingle:    "{scope} · {start} 至 {end} 历史均价统计",
		KeyStatDescCompare:   "{type} · {start} 至 {end} 历史均价对比",
		KeyStatByCities:      "多城市对比",
		KeyStatByBiz:         "多商圈对比",
		KeyStatEmpty:         "暂无统计数据",
		KeyStatExported:      "已导出到表格：{url}",
		KeyChartBar:          "{scope} 历史均价统计（柱状图）",
		KeyChartLine:         "{scope} 历史均价趋势（折线图）",
		KeyChartBand:         "{scope} 房价波动范围（面积图）",
		KeyCompareBar:        "平均单价对比（柱状图）",
		KeyCompareLine:       "平均单价趋势对比（折线图）",
		KeyCompareTotal:      "平均总价对比（柱状图）",
		KeyCompareBand:       "各地区房价波动范围对比（面积图）",
		KeySeriesAvgUnit:     "平均单价 (元/㎡)",
		KeySeriesAvgTotal:    "平均总价 (万元)",
		KeySeriesUpper:       "价格上限",
		KeySeriesMean:        "平均价格",
		KeySeriesLower:       "价格下限",
		KeySeriesUpperOf:     "{label} 上限",
		KeySeriesLowerOf:     "{label} 下限",
		KeyColYearMonth:      "年月",
		KeyColAvgUnit:        "平均单价(元/㎡)",
		KeyColAvgTotal:       "平均总价(万)",
		KeyColCount:          "成交套数",
		KeyColUnit:           "单价(元/㎡)",
		KeyColTotal:          "总价(万)",
		KeyViewBar:           "柱状图",
		KeyViewLine:          "折线图",
		KeyViewBand:          "面积图",
		KeyViewTable:         "表格",
		KeyViewTotal:         "总价对比",

		KeySplashInit:  "初始化中…",
		KeySplashLoad:  "加载数据源…",
		KeySplashIndex: "构建趋势索引…",
		KeySplashReady: "准备进入…",
		KeySplashSkip:  "按 Enter 跳过",
	},
	Hant: {
		KeyAppTitle:      "HPQAQ · 房價看板",
		KeyNavDashboard:  "看板",
		KeyNavStats:      "統計",
		KeyBtnRefresh:    "重新整理",
		KeyBtnSearch:     "查詢",
		KeyBtnReset:      "重設",
		KeyTitleFilters:  "查詢條件",
		KeyDescFilters:   "選擇城市後可按商圈/小區/戶型精準篩選",
		KeyTitleList:     "成交列表",
		KeyDescList:      "Enter 查看詳情；o 開啟詳情連結",
		KeyTitleTrend:    "價格趨勢",
		KeyDescTrend:     "按月彙總成交日期：均價（NT$/㎡）與樣本數",
		KeyTitleNews:     "房產快訊",
		KeyLabelCity:     "城市",
		KeyLabelRegion:   "區域",
		KeyLabelBiz:      "商圈",
		KeyLabelComm:     "小區",
		KeyLabelLayout:   "戶型",
		KeyLabelPageSize: "每頁",
		KeyPhRegion:      "（選填）例如：內湖 / 信義",
		KeyPhBiz:         "（選填）例如：石牌 / 中山",
		KeyPhComm:        "（選填）例如：××社區",
		KeyPhLayout:      "（選填）例如：2房1廳",
		KeyThBiz:         "商圈",
		KeyThComm:        "小區",
		KeyThLayout:      "戶型",
		KeyThArea:        "面積(㎡)",
		KeyThUnit:        "單價(NT$/㎡)",
		KeyThTotal:       "總價(萬 NT$)",
		KeyThDealDate:    "成交日期",
		KeyThDetail:      "詳情",
		KeyChipConnected: "資料介面已連線",
		KeyMetaReady:     "準備就緒",
		KeyMetaLoading:   "載入中…",
		KeyMetaDone:      "完成：共 {n} 筆",
		KeyMetaFail:      "載入失敗",
		KeyEmptyList:     "暫無資料",
		KeyEmptyTrend:    "暫無趨勢資料",
		KeyEmptyNews:     "暫無快訊",
		KeyAbout:         "房產成交資料查詢與趨勢分析",
		KeyModalTitle:    "記錄詳情",
		KeyOpenLink:      "開啟詳情連結",
		KeyToastNeedCity: "請先選擇城市",
		KeyToastReset:    "已重設篩選條件",
		KeyToastParse:    "解析記錄失敗",
		KeyToastNoLink:   "此記錄沒有詳情連結",
		KeyToastOpened:   "已在瀏覽器開啟",
		KeyBadgeAPIOK:    "API：OK",
		KeyBadgeAPIBad:   "API：異常",
		KeyBadgeCities:   "城市：{names}",
		KeyPager:         "第 {p} / {m} 頁",
		KeyTrendAvgTotal: "均總價（萬 NT$）：{v}",
		KeyTrendSamples:  "樣本",
		KeyUnitSuffix:    "NT$/㎡",
		KeyTotalSuffix:   "萬 NT$",
		KeyTrendFail:     "趨勢載入失敗：{err}",
		KeyNewsFetched:   "更新於 {ago}",
		KeyNewsSource:    "來源：{url}",
		KeyNewsFail:      "快訊載入失敗：{err}",

		KeyDetailCommunity: "小區",
		KeyDetailBiz:       "商圈",
		KeyDetailLayout:    "戶型",
		KeyDetailArea:      "面積(㎡)",
		KeyDetailUnit:      "單價",
		KeyDetailTotal:     "總價",
		KeyDetailOrient:    "朝向",
		KeyDetailYear:      "建成年份",
		KeyDetailFloor:     "樓層",
		KeyDetailDealDate:  "成交日期",
		KeyDetailCrawled:   "抓取時間",
		KeyDetailURL:       "詳情連結",

		KeyStatTitle:         "歷史均價統計",
		KeyStatModeSingle:    "單項查詢",
		KeyStatModeCompare:   "對比分析",
		KeyStatStart:         "起始月份",
		KeyStatEnd:           "結束月份",
		KeyStatAllBiz:        "（全部商圈）",
		KeyStatNeedCity:      "請先選擇城市",
		KeyStatRangeInvalid:  "起始時間不能晚於結束時間",
		KeyStatQueryFail:     "查詢失敗",
		KeyStatLoadFail:      "查詢歷史均價失敗",
		KeyStatCompareFail:   "載入對比資料失敗",
		KeyStatNeedCities:    "請至少選擇 2 個城市進行對比",
		KeyStatNeedBiz:       "請至少選擇 2 個商圈進行對比",
		KeyStatLoaded:        "已載入 {scope} 的歷史均價資料",
		KeyStatCompareLoaded: "已載入 {n} 個地區的對比資料",
		KeyStatDescSingle:    "{scope} · {start} 至 {end} 歷史均價統計",
		KeyStatDescCompare:   "{type} · {start} 至 {end} 歷史均價對比",
		KeyStatByCities:      "多城市對比",
		KeyStatByBiz:         "多商圈對比",
		KeyStatEmpty:         "暫無統計資料",
		KeyStatExported:      "已匯出到試算表：{url}",
		KeyChartBar:          "{scope} 歷史均價統計（柱狀圖）",
		KeyChartLine:         "{scope} 歷史均價趨勢（折線圖）",
		KeyChartBand:         "{scope} 房價波動範圍（面積圖）",
		KeyCompareBar:        "平均單價對比（柱狀圖）",
		KeyCompareLine:       "平均單價趨勢對比（折線圖）",
		KeyCompareTotal:      "平均總價對比（柱狀圖）",
		KeyCompareBand:       "各地區房價波動範圍對比（面積圖）",
		KeySeriesAvgUnit:     "平均單價 (NT$/㎡)",
		KeySeriesAvgTotal:    "平均總價 (萬 NT$)",
		KeySeriesUpper:       "價格上限",
		KeySeriesMean:        "平均價格",
		KeySeriesLower:       "價格下限",
		KeySeriesUpperOf:     "{label} 上限",
		KeySeriesLowerOf:     "{label} 下限",
		KeyColYearMonth:      "年月",
		KeyColAvgUnit:        "平均單價(NT$/㎡)",
		KeyColAvgTotal:       "平均總價(萬 NT$)",
		KeyColCount:          "成交筆數",
		KeyColUnit:           "單價(NT$/㎡)",
		KeyColTotal:          "總價(萬 NT$)",
		KeyViewBar:           "柱狀圖",
		KeyViewLine:          "折線圖",
		KeyViewBand:          "面積圖",
		KeyViewTable:         "表格",
		KeyViewTotal:         "總價對比",

		KeySplashInit:  "初始化中…",
		KeySplashLoad:  "載入資料來源…",
		KeySplashIndex: "建立趨勢索引…",
		KeySplashReady: "準備進入…",
		KeySplashSkip:  "按 Enter 跳過",
	},
}

// T returns the template for key in variant with every {name} token
// replaced by vars[name]. Unknown variants use Hans; unknown keys return
// the key itself.
func T(variant Variant, key Key, vars Vars) string {
	dict, ok := catalogs[variant]
	if !ok {
		dict = catalogs[Hans]
	}
	s, ok := dict[key]
	if !ok {
		s = string(key)
	}
	for name, v := range vars {
		s = strings.ReplaceAll(s, "{"+name+"}", fmt.Sprint(v))
	}
	return s
}

// Has reports whether variant defines key.
func Has(variant Variant, key Key) bool {
	_, ok := catalogs[variant][key]
	return ok
}

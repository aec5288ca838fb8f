// Package seed はダッシュボードのモックデータ（埋め込みYAML）を読み込み、各リポジトリへ投入します。
package seed

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	candleentity "stock_synth/internal/feature/candles/domain/entity"
	comparisonentity "stock_synth/internal/feature/comparison/domain/entity"
	indicatorentity "stock_synth/internal/feature/indicators/domain/entity"
	indexentity "stock_synth/internal/feature/indices/domain/entity"
	moverentity "stock_synth/internal/feature/movers/domain/entity"
	predictionentity "stock_synth/internal/feature/prediction/domain/entity"
	profileentity "stock_synth/internal/feature/profile/domain/entity"
	quoteentity "stock_synth/internal/feature/quotes/domain/entity"
	symbolentity "stock_synth/internal/feature/symbollist/domain/entity"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

const defaultInterval = "1day"

// Fixtures はYAMLファイル全体です。
type Fixtures struct {
	Symbols    []symbolFixture   `yaml:"symbols"`
	Quotes     []quoteFixture    `yaml:"quotes"`
	Movers     []moverFixture    `yaml:"movers"`
	Candles    []candleSeries    `yaml:"candles"`
	Indicators []indicatorSeries `yaml:"indicators"`
	Comparison []labeledValues   `yaml:"comparison"`
	Indices    []indexFixture    `yaml:"indices"`
	Intraday   []labeledValues   `yaml:"intraday"`
	Companies  []companyFixture  `yaml:"companies"`
	Prediction predictionFixture `yaml:"prediction"`
}

type symbolFixture struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Market string `yaml:"market"`
	Color  string `yaml:"color"`
	// 省略時はアクティブ
	Inactive bool `yaml:"inactive"`
}

type quoteFixture struct {
	Symbol        string  `yaml:"symbol"`
	Price         float64 `yaml:"price"`
	Change        float64 `yaml:"change"`
	ChangePercent float64 `yaml:"changePercent"`
	Volume        string  `yaml:"volume"`
}

type moverFixture struct {
	Symbol        string  `yaml:"symbol"`
	Name          string  `yaml:"name"`
	Price         float64 `yaml:"price"`
	Change        float64 `yaml:"change"`
	ChangePercent float64 `yaml:"changePercent"`
	Volume        string  `yaml:"volume"`
	MarketCap     string  `yaml:"marketCap"`
}

type candleSeries struct {
	Symbol   string       `yaml:"symbol"`
	Interval string       `yaml:"interval"`
	Bars     []barFixture `yaml:"bars"`
}

type barFixture struct {
	Date   string  `yaml:"date"`
	Open   float64 `yaml:"open"`
	High   float64 `yaml:"high"`
	Low    float64 `yaml:"low"`
	Close  float64 `yaml:"close"`
	Volume int64   `yaml:"volume"`
}

type indicatorSeries struct {
	Symbol  string          `yaml:"symbol"`
	Samples []sampleFixture `yaml:"samples"`
}

type sampleFixture struct {
	Date   string  `yaml:"date"`
	Price  float64 `yaml:"price"`
	SMA20  float64 `yaml:"sma20"`
	SMA50  float64 `yaml:"sma50"`
	EMA12  float64 `yaml:"ema12"`
	EMA26  float64 `yaml:"ema26"`
	RSI    float64 `yaml:"rsi"`
	MACD   float64 `yaml:"macd"`
	Signal float64 `yaml:"signal"`
}

// labeledValues はラベル1つ分の、銘柄（指数）ごとの値です。
// comparison では date、intraday では time をラベルに使います。
type labeledValues struct {
	Date   string             `yaml:"date"`
	Time   string             `yaml:"time"`
	Values map[string]float64 `yaml:"values"`
}

func (l labeledValues) label() string {
	if l.Date != "" {
		return l.Date
	}
	return l.Time
}

type indexFixture struct {
	Symbol        string  `yaml:"symbol"`
	Name          string  `yaml:"name"`
	Region        string  `yaml:"region"`
	Flag          string  `yaml:"flag"`
	Value         float64 `yaml:"value"`
	Change        float64 `yaml:"change"`
	ChangePercent float64 `yaml:"changePercent"`
	Color         string  `yaml:"color"`
}

type companyFixture struct {
	Symbol        string  `yaml:"symbol"`
	Name          string  `yaml:"name"`
	Sector        string  `yaml:"sector"`
	Industry      string  `yaml:"industry"`
	MarketCap     string  `yaml:"marketCap"`
	Price         float64 `yaml:"price"`
	PE            float64 `yaml:"pe"`
	EPS           float64 `yaml:"eps"`
	Dividend      float64 `yaml:"dividend"`
	DividendYield float64 `yaml:"dividendYield"`
	Beta          float64 `yaml:"beta"`
	Volume        string  `yaml:"volume"`
	AvgVolume     string  `yaml:"avgVolume"`
	High52w       float64 `yaml:"high52w"`
	Low52w        float64 `yaml:"low52w"`
	Description   string  `yaml:"description"`
	CEO           string  `yaml:"ceo"`
	Employees     string  `yaml:"employees"`
	Founded       string  `yaml:"founded"`
	Headquarters  string  `yaml:"headquarters"`
	Website       string  `yaml:"website"`
}

type predictionFixture struct {
	ActualPrices []float64               `yaml:"actualPrices"`
	Dates        []string                `yaml:"dates"`
	Models       map[string]modelFixture `yaml:"models"`
}

type modelFixture struct {
	Prices       []float64 `yaml:"prices"`
	Accuracy     float64   `yaml:"accuracy"`
	RMSE         float64   `yaml:"rmse"`
	MAE          float64   `yaml:"mae"`
	TrainingTime int       `yaml:"trainingTime"`
}

// Default は埋め込みのフィクスチャを返します。
func Default() (*Fixtures, error) {
	return Parse(fixturesYAML)
}

// Parse はYAMLを読み込み、全レコードを検証します。
// 不正なレコードがあれば、そのレコードを名指ししたエラーを返します。
func Parse(b []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate は各エンティティの不変条件を確認します。
func (f *Fixtures) Validate() error {
	for _, q := range f.QuoteEntities() {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quotes: %w", err)
		}
	}
	for _, m := range f.MoverEntities() {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("movers: %w", err)
		}
	}
	for _, c := range f.CandleEntities() {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("candles: %w", err)
		}
	}
	for _, s := range f.SampleEntities() {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("indicators: %w", err)
		}
	}
	for _, i := range f.IndexEntities() {
		if err := i.Validate(); err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	}
	for _, c := range f.CompanyEntities() {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("companies: %w", err)
		}
	}
	if _, err := f.PredictionPayload(); err != nil {
		return fmt.Errorf("prediction: %w", err)
	}
	return nil
}

// SymbolEntities はファイル順を sort_key にした銘柄一覧です。
func (f *Fixtures) SymbolEntities() []symbolentity.Symbol {
	out := make([]symbolentity.Symbol, 0, len(f.Symbols))
	for i, s := range f.Symbols {
		out = append(out, symbolentity.Symbol{
			Code:     s.Code,
			Name:     s.Name,
			Market:   s.Market,
			Color:    s.Color,
			IsActive: !s.Inactive,
			SortKey:  i + 1,
		})
	}
	return out
}

func (f *Fixtures) QuoteEntities() []quoteentity.Quote {
	out := make([]quoteentity.Quote, 0, len(f.Quotes))
	for i, q := range f.Quotes {
		out = append(out, quoteentity.Quote{
			Symbol:        q.Symbol,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
			Volume:        q.Volume,
			SortKey:       i + 1,
		})
	}
	return out
}

func (f *Fixtures) MoverEntities() []moverentity.Mover {
	out := make([]moverentity.Mover, 0, len(f.Movers))
	for _, m := range f.Movers {
		out = append(out, moverentity.Mover(m))
	}
	return out
}

// CandleEntities は系列ごとに Seq を1から振ります。interval 省略時は 1day です。
func (f *Fixtures) CandleEntities() []candleentity.Candle {
	var out []candleentity.Candle
	for _, s := range f.Candles {
		interval := s.Interval
		if interval == "" {
			interval = defaultInterval
		}
		for i, b := range s.Bars {
			out = append(out, candleentity.Candle{
				Symbol:   s.Symbol,
				Interval: interval,
				Seq:      i + 1,
				Label:    b.Date,
				Open:     b.Open,
				High:     b.High,
				Low:      b.Low,
				Close:    b.Close,
				Volume:   b.Volume,
			})
		}
	}
	return out
}

func (f *Fixtures) SampleEntities() []indicatorentity.Sample {
	var out []indicatorentity.Sample
	for _, s := range f.Indicators {
		for i, x := range s.Samples {
			out = append(out, indicatorentity.Sample{
				Symbol: s.Symbol,
				Seq:    i + 1,
				Label:  x.Date,
				Price:  x.Price,
				SMA20:  x.SMA20,
				SMA50:  x.SMA50,
				EMA12:  x.EMA12,
				EMA26:  x.EMA26,
				RSI:    x.RSI,
				MACD:   x.MACD,
				Signal: x.Signal,
			})
		}
	}
	return out
}

// ComparisonPoints は行ごとの値を銘柄ごとの点に展開します。
func (f *Fixtures) ComparisonPoints() []comparisonentity.Point {
	var out []comparisonentity.Point
	for i, row := range f.Comparison {
		for _, sym := range slices.Sorted(maps.Keys(row.Values)) {
			out = append(out, comparisonentity.Point{
				Symbol: sym,
				Seq:    i + 1,
				Label:  row.label(),
				Value:  row.Values[sym],
			})
		}
	}
	return out
}

func (f *Fixtures) IndexEntities() []indexentity.Index {
	out := make([]indexentity.Index, 0, len(f.Indices))
	for i, x := range f.Indices {
		out = append(out, indexentity.Index{
			Symbol:        x.Symbol,
			Name:          x.Name,
			Region:        indexentity.Region(x.Region),
			Flag:          x.Flag,
			Value:         x.Value,
			Change:        x.Change,
			ChangePercent: x.ChangePercent,
			Color:         x.Color,
			SortKey:       i + 1,
		})
	}
	return out
}

func (f *Fixtures) IntradayPoints() []indexentity.IntradayPoint {
	var out []indexentity.IntradayPoint
	for i, row := range f.Intraday {
		for _, sym := range slices.Sorted(maps.Keys(row.Values)) {
			out = append(out, indexentity.IntradayPoint{
				Index: sym,
				Seq:   i + 1,
				Time:  row.label(),
				Value: row.Values[sym],
			})
		}
	}
	return out
}

func (f *Fixtures) CompanyEntities() []profileentity.Company {
	out := make([]profileentity.Company, 0, len(f.Companies))
	for _, c := range f.Companies {
		out = append(out, profileentity.Company(c))
	}
	return out
}

// PredictionPayload は予測エンドポイントが返す固定ペイロードです。
func (f *Fixtures) PredictionPayload() (predictionentity.Payload, error) {
	p := predictionentity.Payload{
		Predictions:  make(map[string]predictionentity.ModelResult, len(f.Prediction.Models)),
		ActualPrices: slices.Clone(f.Prediction.ActualPrices),
		Dates:        slices.Clone(f.Prediction.Dates),
	}
	for name, m := range f.Prediction.Models {
		p.Predictions[name] = predictionentity.ModelResult{
			Prices:       slices.Clone(m.Prices),
			Accuracy:     m.Accuracy,
			RMSE:         m.RMSE,
			MAE:          m.MAE,
			TrainingTime: m.TrainingTime,
		}
	}
	if err := p.Validate(); err != nil {
		return predictionentity.Payload{}, err
	}
	return p, nil
}

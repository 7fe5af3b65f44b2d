// Package client はContent APIのGoクライアントを提供します。
//
// Clientはすべてのコンテンツコレクションのインメモリミラー（スナップショット）を
// 保持します。Refreshは5つのコレクションを並列に取得し、すべて成功した場合のみ
// 単一のロック区間でスナップショットを差し替えます。いずれかの取得が失敗した
// 場合、更新全体が失敗として扱われ、直前の状態が保持されます（部分適用なし）。
//
// ミューテーションはサーバーが返す正となるエンティティを受け取り、それを明示的な
// 状態遷移としてローカルスナップショットに適用します。購読やプッシュの仕組みは
// 存在しないため、他クライアントの変更を取り込むにはRefreshを呼び直します。
//
// 同時実行: Refreshの多重実行は直列化されず、最後に完了したレスポンスが勝ちます。
// ただしスナップショットの差し替えは常にアトミックであり、異なる取得に由来する
// コレクションが混ざることはありません。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"academy_backend/internal/api"
	"academy_backend/internal/feature/content/domain/entity"
	paymentusecase "academy_backend/internal/feature/payment/usecase"
	infrahttp "academy_backend/internal/platform/http"
)

// defaultTimeout はHTTPクライアント未指定時のリクエストタイムアウトです。
const defaultTimeout = 10 * time.Second

// Snapshot は単一のリフレッシュに由来する全コレクションの一貫したビューです。
type Snapshot struct {
	Hero         entity.HeroContent
	Features     []entity.Feature
	Packages     []entity.Package
	Testimonials []entity.Testimonial
	FAQs         []entity.FAQ
}

// Client はContent APIへのアクセスとローカルスナップショットの管理を行います。
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	token   string
	snap    Snapshot
	loading bool
}

// New は指定されたベースURLでClientの新しいインスタンスを生成します。
// httpClientがnilの場合、デフォルトのタイムアウト付きクライアントを使用します。
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = infrahttp.NewHTTPClient(defaultTimeout)
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Login は管理者として認証し、以降のミューテーションで使用するトークンを保存します。
func (c *Client) Login(ctx context.Context, username, password string) error {
	var res api.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/login",
		api.LoginRequest{Username: username, Password: password}, &res, false)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = res.Token
	c.mu.Unlock()
	return nil
}

// SetToken は既存のJWTトークンを設定します。
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Loading はリフレッシュが進行中かどうかを返します。
func (c *Client) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Snapshot は現在のスナップショットのコピーを返します。
// スライスはコピーされるため、呼び出し元が変更しても内部状態には影響しません。
func (c *Client) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Hero:         c.snap.Hero,
		Features:     append([]entity.Feature(nil), c.snap.Features...),
		Packages:     append([]entity.Package(nil), c.snap.Packages...),
		Testimonials: append([]entity.Testimonial(nil), c.snap.Testimonials...),
		FAQs:         append([]entity.FAQ(nil), c.snap.FAQs...),
	}
}

// Refresh は5つのコレクションを並列に取得し、スナップショットを差し替えます。
// いずれかの取得が失敗した場合、スナップショットは変更されません。
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	var (
		hero         entity.HeroContent
		features     []entity.Feature
		packages     []entity.Package
		testimonials []entity.Testimonial
		faqs         []entity.FAQ
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/hero", nil, &hero, false) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/features", nil, &features, false) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/packages", nil, &packages, false) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/testimonials", nil, &testimonials, false) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/faqs", nil, &faqs, false) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh content: %w", err)
	}

	// すべて成功した場合のみ、単一のロック区間でアトミックに適用する
	c.mu.Lock()
	c.snap = Snapshot{
		Hero:         hero,
		Features:     features,
		Packages:     packages,
		Testimonials: testimonials,
		FAQs:         faqs,
	}
	c.mu.Unlock()
	return nil
}

// SaveHero はヒーローコンテンツを保存し、サーバーが返した行をスナップショットに適用します。
func (c *Client) SaveHero(ctx context.Context, req api.HeroRequest) (entity.HeroContent, error) {
	var out entity.HeroContent
	if err := c.do(ctx, http.MethodPut, "/api/hero", req, &out, true); err != nil {
		return entity.HeroContent{}, err
	}
	c.mu.Lock()
	c.snap.Hero = out
	c.mu.Unlock()
	return out, nil
}

// AddFeature は特徴を作成し、採番済みのエンティティをスナップショットに追加します。
func (c *Client) AddFeature(ctx context.Context, req api.FeatureRequest) (entity.Feature, error) {
	var out entity.Feature
	if err := c.do(ctx, http.MethodPost, "/api/features", req, &out, true); err != nil {
		return entity.Feature{}, err
	}
	c.mu.Lock()
	c.snap.Features = append(c.snap.Features, out)
	c.mu.Unlock()
	return out, nil
}

// UpdateFeature は特徴を更新し、更新後のエンティティをスナップショットに反映します。
func (c *Client) UpdateFeature(ctx context.Context, id uint, req api.FeatureRequest) (entity.Feature, error) {
	var out entity.Feature
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/features/%d", id), req, &out, true); err != nil {
		return entity.Feature{}, err
	}
	c.mu.Lock()
	c.snap.Features = replaceByID(c.snap.Features, out, func(f entity.Feature) uint { return f.ID })
	c.mu.Unlock()
	return out, nil
}

// DeleteFeature は特徴を削除し、スナップショットから取り除きます。
func (c *Client) DeleteFeature(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/features/%d", id), nil, nil, true); err != nil {
		return err
	}
	c.mu.Lock()
	c.snap.Features = removeByID(c.snap.Features, id, func(f entity.Feature) uint { return f.ID })
	c.mu.Unlock()
	return nil
}

// AddPackage はパッケージを作成し、採番済みのエンティティをスナップショットに追加します。
func (c *Client) AddPackage(ctx context.Context, req api.PackageRequest) (entity.Package, error) {
	var out entity.Package
	if err := c.do(ctx, http.MethodPost, "/api/packages", req, &out, true); err != nil {
		return entity.Package{}, err
	}
	c.mu.Lock()
	c.snap.Packages = append(c.snap.Packages, out)
	c.mu.Unlock()
	return out, nil
}

// UpdatePackage はパッケージを更新し、更新後のエンティティをスナップショットに反映します。
func (c *Client) UpdatePackage(ctx context.Context, id uint, req api.PackageRequest) (entity.Package, error) {
	var out entity.Package
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/packages/%d", id), req, &out, true); err != nil {
		return entity.Package{}, err
	}
	c.mu.Lock()
	c.snap.Packages = replaceByID(c.snap.Packages, out, func(p entity.Package) uint { return p.ID })
	c.mu.Unlock()
	return out, nil
}

// DeletePackage はパッケージを削除し、スナップショットから取り除きます。
func (c *Client) DeletePackage(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/packages/%d", id), nil, nil, true); err != nil {
		return err
	}
	c.mu.Lock()
	c.snap.Packages = removeByID(c.snap.Packages, id, func(p entity.Package) uint { return p.ID })
	c.mu.Unlock()
	return nil
}

// AddTestimonial は体験談を作成し、採番済みのエンティティをスナップショットに追加します。
func (c *Client) AddTestimonial(ctx context.Context, req api.TestimonialRequest) (entity.Testimonial, error) {
	var out entity.Testimonial
	if err := c.do(ctx, http.MethodPost, "/api/testimonials", req, &out, true); err != nil {
		return entity.Testimonial{}, err
	}
	c.mu.Lock()
	c.snap.Testimonials = append(c.snap.Testimonials, out)
	c.mu.Unlock()
	return out, nil
}

// UpdateTestimonial は体験談を更新し、更新後のエンティティをスナップショットに反映します。
func (c *Client) UpdateTestimonial(ctx context.Context, id uint, req api.TestimonialRequest) (entity.Testimonial, error) {
	var out entity.Testimonial
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/testimonials/%d", id), req, &out, true); err != nil {
		return entity.Testimonial{}, err
	}
	c.mu.Lock()
	c.snap.Testimonials = replaceByID(c.snap.Testimonials, out, func(tm entity.Testimonial) uint { return tm.ID })
	c.mu.Unlock()
	return out, nil
}

// DeleteTestimonial は体験談を削除し、スナップショットから取り除きます。
func (c *Client) DeleteTestimonial(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/testimonials/%d", id), nil, nil, true); err != nil {
		return err
	}
	c.mu.Lock()
	c.snap.Testimonials = removeByID(c.snap.Testimonials, id, func(tm entity.Testimonial) uint { return tm.ID })
	c.mu.Unlock()
	return nil
}

// AddFAQ はFAQを作成し、採番済みのエンティティをスナップショットに追加します。
func (c *Client) AddFAQ(ctx context.Context, req api.FAQRequest) (entity.FAQ, error) {
	var out entity.FAQ
	if err := c.do(ctx, http.MethodPost, "/api/faqs", req, &out, true); err != nil {
		return entity.FAQ{}, err
	}
	c.mu.Lock()
	c.snap.FAQs = append(c.snap.FAQs, out)
	c.mu.Unlock()
	return out, nil
}

// UpdateFAQ はFAQを更新し、更新後のエンティティをスナップショットに反映します。
func (c *Client) UpdateFAQ(ctx context.Context, id uint, req api.FAQRequest) (entity.FAQ, error) {
	var out entity.FAQ
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/faqs/%d", id), req, &out, true); err != nil {
		return entity.FAQ{}, err
	}
	c.mu.Lock()
	c.snap.FAQs = replaceByID(c.snap.FAQs, out, func(f entity.FAQ) uint { return f.ID })
	c.mu.Unlock()
	return out, nil
}

// DeleteFAQ はFAQを削除し、スナップショットから取り除きます。
func (c *Client) DeleteFAQ(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/faqs/%d", id), nil, nil, true); err != nil {
		return err
	}
	c.mu.Lock()
	c.snap.FAQs = removeByID(c.snap.FAQs, id, func(f entity.FAQ) uint { return f.ID })
	c.mu.Unlock()
	return nil
}

// InitiatePayment は決済を開始し、チェックアウトURLを返します。
func (c *Client) InitiatePayment(ctx context.Context, amount float64, currency, description string) (string, error) {
	var out api.CreatePaymentResponse
	err := c.do(ctx, http.MethodPost, "/api/create-payment", api.CreatePaymentRequest{
		PriceAmount:      amount,
		PriceCurrency:    currency,
		OrderDescription: description,
	}, &out, false)
	if err != nil {
		return "", err
	}
	return out.InvoiceURL, nil
}

// PayForPackage はパッケージの決済を開始します。
// 数値金額フィールドを優先し、未設定の場合のみ表示価格文字列をパースします。
func (c *Client) PayForPackage(ctx context.Context, pkg entity.Package, currency string) (string, error) {
	amount := pkg.Amount
	if amount <= 0 {
		parsed, err := paymentusecase.ParsePrice(pkg.Price)
		if err != nil {
			return "", fmt.Errorf("package %q: %w", pkg.Name, err)
		}
		amount = parsed
	}
	return c.InitiatePayment(ctx, amount, currency, "Package purchase: "+pkg.Name)
}

// do は1つのJSONリクエストを実行します。
// 非2xxレスポンスはエラーとして返され、サーバーのエラーメッセージを含みます。
func (c *Client) do(ctx context.Context, method, path string, body, out any, auth bool) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		c.mu.RLock()
		token := c.token
		c.mu.RUnlock()
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: http %d: %s", method, path, res.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%s %s: http %d", method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// replaceByID はIDが一致する要素をitemで置き換えた新しいスライスを返します。
// 一致する要素が存在しない場合、スライスは変更されません。
func replaceByID[T any](list []T, item T, idOf func(T) uint) []T {
	out := append([]T(nil), list...)
	for i := range out {
		if idOf(out[i]) == idOf(item) {
			out[i] = item
			break
		}
	}
	return out
}

// removeByID はIDが一致する要素を取り除いた新しいスライスを返します。
func removeByID[T any](list []T, id uint, idOf func(T) uint) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}

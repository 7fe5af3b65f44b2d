// admin はContent APIの管理CLIです。
//
// 使い方:
//
//	admin [flags] show
//	admin [flags] hero set -title ... [-subtitle ...] [-description ...] [-whatsapp ...]
//	admin [flags] feature add -icon ... -title ... -description ...
//	admin [flags] feature update -id N [fields]
//	admin [flags] feature delete -id N [-yes]
//	admin [flags] package|testimonial|faq add|update|delete ...
//
// 接続先と認証情報はフラグまたは環境変数（API_BASE_URL / ADMIN_USERNAME /
// ADMIN_PASSWORD）で指定します。削除は-yesを付けない限り確認を求めます。
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"academy_backend/internal/api"
	"academy_backend/internal/client"
)

const commandTimeout = 30 * time.Second

func main() {
	baseURL := flag.String("base", envOr("API_BASE_URL", "http://localhost:8080"), "content API base URL")
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	c := client.New(*baseURL, nil)

	switch args[0] {
	case "show":
		runShow(ctx, c)
	case "hero":
		login(ctx, c, *username, *password)
		runHero(ctx, c, args[1:])
	case "feature":
		login(ctx, c, *username, *password)
		runFeature(ctx, c, args[1:])
	case "package":
		login(ctx, c, *username, *password)
		runPackage(ctx, c, args[1:])
	case "testimonial":
		login(ctx, c, *username, *password)
		runTestimonial(ctx, c, args[1:])
	case "faq":
		login(ctx, c, *username, *password)
		runFAQ(ctx, c, args[1:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin [flags] show|hero|feature|package|testimonial|faq ...")
	os.Exit(2)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func login(ctx context.Context, c *client.Client, username, password string) {
	if username == "" || password == "" {
		log.Fatal("admin credentials required: set -username/-password or ADMIN_USERNAME/ADMIN_PASSWORD")
	}
	if err := c.Login(ctx, username, password); err != nil {
		log.Fatal("login failed: ", err)
	}
}

func runShow(ctx context.Context, c *client.Client) {
	if err := c.Refresh(ctx); err != nil {
		log.Fatal(err)
	}
	snap := c.Snapshot()

	fmt.Printf("hero: %s / %s\n", snap.Hero.Title, snap.Hero.Subtitle)
	fmt.Printf("features (%d):\n", len(snap.Features))
	for _, f := range snap.Features {
		fmt.Printf("  [%d] %s %s\n", f.ID, f.Icon, f.Title)
	}
	fmt.Printf("packages (%d):\n", len(snap.Packages))
	for _, p := range snap.Packages {
		popular := ""
		if p.Popular {
			popular = " *popular*"
		}
		fmt.Printf("  [%d] %s %s%s\n", p.ID, p.Name, p.Price, popular)
	}
	fmt.Printf("testimonials (%d):\n", len(snap.Testimonials))
	for _, t := range snap.Testimonials {
		fmt.Printf("  [%d] %s (%s) %d/5\n", t.ID, t.Name, t.Role, t.Rating)
	}
	fmt.Printf("faqs (%d):\n", len(snap.FAQs))
	for _, f := range snap.FAQs {
		fmt.Printf("  [%d] %s\n", f.ID, f.Question)
	}
}

func runHero(ctx context.Context, c *client.Client, args []string) {
	if len(args) == 0 || args[0] != "set" {
		log.Fatal("usage: admin hero set -title ... [-subtitle ...] [-description ...] [-whatsapp ...]")
	}
	fs := flag.NewFlagSet("hero set", flag.ExitOnError)
	title := fs.String("title", "", "hero title (required)")
	subtitle := fs.String("subtitle", "", "hero subtitle")
	description := fs.String("description", "", "hero description")
	whatsapp := fs.String("whatsapp", "", "WhatsApp contact number")
	_ = fs.Parse(args[1:])
	if *title == "" {
		log.Fatal("hero set: -title is required")
	}

	hero, err := c.SaveHero(ctx, api.HeroRequest{
		Title:          *title,
		Subtitle:       *subtitle,
		Description:    *description,
		WhatsappNumber: *whatsapp,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("hero saved: %s\n", hero.Title)
}

func runFeature(ctx context.Context, c *client.Client, args []string) {
	if len(args) == 0 {
		log.Fatal("usage: admin feature add|update|delete ...")
	}
	fs := flag.NewFlagSet("feature "+args[0], flag.ExitOnError)
	id := fs.Uint("id", 0, "feature id (update/delete)")
	icon := fs.String("icon", "", "icon name")
	title := fs.String("title", "", "feature title")
	description := fs.String("description", "", "feature description")
	yes := fs.Bool("yes", false, "skip delete confirmation")
	_ = fs.Parse(args[1:])

	switch args[0] {
	case "add":
		if *icon == "" || *title == "" || *description == "" {
			log.Fatal("feature add: -icon, -title and -description are required")
		}
		f, err := c.AddFeature(ctx, api.FeatureRequest{Icon: *icon, Title: *title, Description: *description})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("feature created: id=%d\n", f.ID)
	case "update":
		requireID(*id)
		f, err := c.UpdateFeature(ctx, *id, api.FeatureRequest{Icon: *icon, Title: *title, Description: *description})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("feature updated: id=%d\n", f.ID)
	case "delete":
		requireID(*id)
		confirmDelete("feature", *id, *yes)
		if err := c.DeleteFeature(ctx, *id); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("feature deleted: id=%d\n", *id)
	default:
		log.Fatal("usage: admin feature add|update|delete ...")
	}
}

func runPackage(ctx context.Context, c *client.Client, args []string) {
	if len(args) == 0 {
		log.Fatal("usage: admin package add|update|delete ...")
	}
	fs := flag.NewFlagSet("package "+args[0], flag.ExitOnError)
	id := fs.Uint("id", 0, "package id (update/delete)")
	name := fs.String("name", "", "package name")
	price := fs.String("price", "", "display price, e.g. \"Rp 500.000\"")
	amount := fs.Float64("amount", 0, "numeric amount used for payments")
	description := fs.String("description", "", "package description")
	features := fs.String("features", "", "comma-separated feature bullet list")
	popular := fs.Bool("popular", false, "mark package as most popular")
	yes := fs.Bool("yes", false, "skip delete confirmation")
	_ = fs.Parse(args[1:])

	req := api.PackageRequest{
		Name:        *name,
		Price:       *price,
		Amount:      *amount,
		Description: *description,
		Features:    splitList(*features),
		Popular:     *popular,
	}

	switch args[0] {
	case "add":
		if req.Name == "" || req.Price == "" {
			log.Fatal("package add: -name and -price are required")
		}
		p, err := c.AddPackage(ctx, req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("package created: id=%d\n", p.ID)
	case "update":
		requireID(*id)
		p, err := c.UpdatePackage(ctx, *id, req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("package updated: id=%d\n", p.ID)
	case "delete":
		requireID(*id)
		confirmDelete("package", *id, *yes)
		if err := c.DeletePackage(ctx, *id); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("package deleted: id=%d\n", *id)
	default:
		log.Fatal("usage: admin package add|update|delete ...")
	}
}

func runTestimonial(ctx context.Context, c *client.Client, args []string) {
	if len(args) == 0 {
		log.Fatal("usage: admin testimonial add|update|delete ...")
	}
	fs := flag.NewFlagSet("testimonial "+args[0], flag.ExitOnError)
	id := fs.Uint("id", 0, "testimonial id (update/delete)")
	name := fs.String("name", "", "member name")
	role := fs.String("role", "", "member role")
	content := fs.String("content", "", "testimonial text")
	rating := fs.Int("rating", 0, "star rating 1-5 (0 = server default)")
	yes := fs.Bool("yes", false, "skip delete confirmation")
	_ = fs.Parse(args[1:])

	req := api.TestimonialRequest{Name: *name, Role: *role, Content: *content, Rating: *rating}

	switch args[0] {
	case "add":
		if req.Name == "" || req.Content == "" {
			log.Fatal("testimonial add: -name and -content are required")
		}
		t, err := c.AddTestimonial(ctx, req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("testimonial created: id=%d\n", t.ID)
	case "update":
		requireID(*id)
		t, err := c.UpdateTestimonial(ctx, *id, req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("testimonial updated: id=%d\n", t.ID)
	case "delete":
		requireID(*id)
		confirmDelete("testimonial", *id, *yes)
		if err := c.DeleteTestimonial(ctx, *id); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("testimonial deleted: id=%d\n", *id)
	default:
		log.Fatal("usage: admin testimonial add|update|delete ...")
	}
}

func runFAQ(ctx context.Context, c *client.Client, args []string) {
	if len(args) == 0 {
		log.Fatal("usage: admin faq add|update|delete ...")
	}
	fs := flag.NewFlagSet("faq "+args[0], flag.ExitOnError)
	id := fs.Uint("id", 0, "faq id (update/delete)")
	question := fs.String("question", "", "question text")
	answer := fs.String("answer", "", "answer text")
	yes := fs.Bool("yes", false, "skip delete confirmation")
	_ = fs.Parse(args[1:])

	req := api.FAQRequest{Question: *question, Answer: *answer}

	switch args[0] {
	case "add":
		if req.Question == "" || req.Answer == "" {
			log.Fatal("faq add: -question and -answer are required")
		}
		f, err := c.AddFAQ(ctx, req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("faq created: id=%d\n", f.ID)
	case "update":
		requireID(*id)
		f, err := c.UpdateFAQ(ctx, *id, req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("faq updated: id=%d\n", f.ID)
	case "delete":
		requireID(*id)
		confirmDelete("faq", *id, *yes)
		if err := c.DeleteFAQ(ctx, *id); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("faq deleted: id=%d\n", *id)
	default:
		log.Fatal("usage: admin faq add|update|delete ...")
	}
}

func requireID(id uint) {
	if id == 0 {
		log.Fatal("-id is required")
	}
}

// confirmDelete は-yesが指定されていない限り標準入力で削除確認を求めます。
func confirmDelete(kind string, id uint, yes bool) {
	if yes {
		return
	}
	fmt.Printf("delete %s %d? [y/N]: ", kind, id)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatal("aborted")
	}
	if ans := strings.ToLower(strings.TrimSpace(line)); ans != "y" && ans != "yes" {
		log.Fatal("aborted")
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

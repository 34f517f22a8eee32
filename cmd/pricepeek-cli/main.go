// Command pricepeek-cli is a terminal storefront client. It fetches the
// catalog from the API, keeps all browsing state in the storefront
// engine and persists cart/session through the configured key-value
// store, so a restarted session picks up where it left off.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"pricepeek/internal/catalog"
	"pricepeek/internal/config"
	"pricepeek/internal/domain"
	"pricepeek/internal/kv"
	"pricepeek/internal/storefront"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store := kv.FromConfig(cfg.RedisAddr)
	cat := catalog.NewStore()
	app, err := storefront.NewApp(ctx, store, cat)
	if err != nil {
		log.Fatal(err)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	doc, err := fetchCatalog(client, cfg.APIBase)
	if err != nil {
		// Browsing still works against an empty catalog; routes stay parked.
		log.Printf("[warn] could not load catalog: %v", err)
	} else {
		if skipped := cat.Load(doc); skipped > 0 {
			log.Printf("[catalog] skipped %d malformed products", skipped)
		}
		app.OnCatalogLoaded()
	}

	if s, ok := app.Session(); ok {
		fmt.Printf("welcome back, %s\n", s.Username)
	}

	criteria := catalog.NewCriteria()
	sc := bufio.NewScanner(os.Stdin)
	fmt.Println(`type "help" for commands`)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "open":
			render(app, app.Navigate(rest), criteria)
		case "search":
			criteria.Search = rest
			printProducts(app.Visible(criteria))
		case "min", "max":
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				fmt.Println("expected a number")
				continue
			}
			if cmd == "min" {
				criteria.MinPrice = v
			} else {
				criteria.MaxPrice = v
			}
			printProducts(app.Visible(criteria))
		case "brand":
			criteria.Brands = splitArgs(rest)
			printProducts(app.Visible(criteria))
		case "category":
			criteria.Categories = nil
			for _, c := range splitArgs(rest) {
				criteria.Categories = append(criteria.Categories, domain.Category(c))
			}
			printProducts(app.Visible(criteria))
		case "platform":
			criteria.Platforms = splitArgs(rest)
			printProducts(app.Visible(criteria))
		case "reset":
			criteria = catalog.NewCriteria()
			printProducts(app.Visible(criteria))
		case "list":
			printProducts(app.Visible(criteria))
		case "cart":
			printCart(app)
		case "add":
			addToCart(ctx, app, rest)
		case "rm":
			i, err := strconv.Atoi(rest)
			if err != nil {
				fmt.Println("expected a cart index")
				continue
			}
			if err := app.RemoveFromCart(ctx, i); err != nil {
				fmt.Println(err)
				continue
			}
			printCart(app)
		case "signup":
			signup(client, cfg.APIBase, splitArgs(rest))
		case "login":
			loginCmd(ctx, client, cfg.APIBase, app, splitArgs(rest))
		case "logout":
			if err := app.Logout(ctx); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("logged out, cart cleared")
		default:
			fmt.Println("unknown command; try \"help\"")
		}
	}
}

func fetchCatalog(client *http.Client, base string) (domain.RawProductDocument, error) {
	var doc domain.RawProductDocument
	resp, err := client.Get(base + "/api/products")
	if err != nil {
		return doc, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return doc, fmt.Errorf("catalog fetch: status %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&doc)
	return doc, err
}

func addToCart(ctx context.Context, app *storefront.App, rest string) {
	args := splitArgs(rest)
	if len(args) < 1 {
		fmt.Println("usage: add <productId> [sellerIndex]")
		return
	}
	p, ok := app.Catalog.Get(domain.ID(args[0]))
	if !ok {
		fmt.Println("no such product")
		return
	}
	sellerIdx := 0
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			sellerIdx = n
		}
	}
	if sellerIdx < 0 || sellerIdx >= len(p.Sellers) {
		fmt.Println("no such offer")
		return
	}
	s := p.Sellers[sellerIdx]
	err := app.AddToCart(ctx, domain.CartItem{
		ProductID:  p.ID,
		Name:       p.Name,
		Image:      p.Image,
		SellerName: s.Name,
		Price:      s.Price,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("added %s from %s (%.2f)\n", p.Name, s.Name, s.Price)
}

func signup(client *http.Client, base string, args []string) {
	if len(args) != 3 {
		fmt.Println("usage: signup <username> <email> <password>")
		return
	}
	body, _ := json.Marshal(map[string]string{
		"username": args[0], "email": args[1], "password": args[2],
	})
	resp, err := client.Post(base+"/api/signup", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("server error, try again")
		return
	}
	defer resp.Body.Close()
	var out struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode == http.StatusCreated {
		fmt.Println(out.Message)
	} else {
		fmt.Println("signup failed:", out.Error)
	}
}

func loginCmd(ctx context.Context, client *http.Client, base string, app *storefront.App, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: login <email> <password>")
		return
	}
	body, _ := json.Marshal(map[string]string{"email": args[0], "password": args[1]})
	resp, err := client.Post(base+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("server error, try again")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Println("invalid credentials")
		return
	}
	var out struct {
		User struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Println("bad response from server")
		return
	}
	if _, err := app.Login(ctx, out.User.Username); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("logged in as %s\n", out.User.Username)
}

func render(app *storefront.App, v storefront.ViewState, c catalog.Criteria) {
	switch v.View {
	case storefront.ViewProductDetail:
		p, ok := app.Catalog.Get(v.ProductID)
		if !ok {
			return
		}
		fmt.Printf("%s — %s [%s]\n%s\n", p.Name, p.Brand, p.Category, p.Description)
		for _, s := range p.Specifications {
			fmt.Println("  *", s)
		}
		for i, s := range p.Sellers {
			trust := ""
			if s.Trusted {
				trust = " (trusted)"
			}
			fmt.Printf("  [%d] %s: %.2f, %.1f★ (%d), %d days%s\n",
				i, s.Name, s.Price, s.Rating, s.ReviewCount, s.DeliveryDays, trust)
		}
	case storefront.ViewCart:
		printCart(app)
	default:
		fmt.Printf("view=%s overlay=%s\n", v.View, v.Overlay)
		printProducts(app.Visible(c))
	}
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("no products found")
		return
	}
	for _, p := range products {
		best, _ := catalog.BestPrice(p)
		fmt.Printf("%-12s %-40s %-10s %-12s best %.2f (%d offers)\n",
			p.ID, p.Name, p.Brand, p.Category, best, len(p.Sellers))
	}
}

func printCart(app *storefront.App) {
	items := app.CartItems()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for i, it := range items {
		fmt.Printf("[%d] %s from %s — %.2f\n", i, it.Name, it.SellerName, it.Price)
	}
	fmt.Printf("total: %.2f\n", app.CartTotal())
}

func printHelp() {
	fmt.Println(`open <token>       navigate (categories|login|signup|cart|product=<id>)
search <term>      set search term
min|max <price>    set price bounds
brand|category|platform <values...>
reset              clear filters
list               show visible products
add <id> [offer]   add product offer to cart (requires login)
rm <index>         remove cart line
cart               show cart
signup <user> <email> <password>
login <email> <password>
logout
quit`)
}

func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	errUsage = errors.New("usage")
	// errReported means the failure was already shown to the shopper.
	errReported = errors.New("reported")
)

type cli struct {
	app *app.App
	out io.Writer
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "catalog":
		return c.catalog(ctx, rest)
	case "product":
		return c.product(ctx, rest)
	case "cart":
		return c.cart(ctx, rest)
	case "wishlist":
		return c.wishlist(ctx, rest)
	case "checkout":
		return c.checkout(ctx, rest)
	case "districts":
		for _, d := range checkout.LimaDistricts {
			fmt.Fprintln(c.out, d)
		}
		return nil
	case "login":
		return c.login(ctx, rest)
	case "register":
		return c.register(ctx, rest)
	case "profile":
		return c.profile(ctx)
	case "logout":
		return c.app.API.Logout()
	case "orders":
		return c.orders(ctx, rest)
	case "admin":
		return c.admin(ctx, rest)
	default:
		return errUsage
	}
}

func (c *cli) catalog(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	var (
		filter   domain.ProductFilter
		category string
		gender   string
		style    string
		minPrice string
		maxPrice string
	)
	fs.StringVar(&category, "category", "", "poleras, pantalones, vestidos, chaquetas, zapatos")
	fs.StringVar(&gender, "gender", "", "mujer, hombre, niños")
	fs.StringVar(&style, "style", "", "casual, formal, deportivo")
	fs.StringVar(&filter.Size, "size", "", "Size")
	fs.StringVar(&filter.Color, "color", "", "Colour name")
	fs.StringVar(&minPrice, "min", "", "Minimum price")
	fs.StringVar(&maxPrice, "max", "", "Maximum price")
	fs.StringVar(&filter.Search, "search", "", "Free text search")
	fs.BoolVar(&filter.OnlyNew, "new", false, "Only new arrivals")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	filter.Category = domain.Category(category)
	filter.Gender = domain.Gender(gender)
	filter.Style = domain.Style(style)

	var err error
	if filter.MinPrice, err = parsePrice(minPrice); err != nil {
		return fmt.Errorf("min: %w", err)
	}
	if filter.MaxPrice, err = parsePrice(maxPrice); err != nil {
		return fmt.Errorf("max: %w", err)
	}

	products, err := c.app.API.ListProducts(ctx, filter)
	if err != nil {
		return fmt.Errorf("API.ListProducts: %w", err)
	}

	printProducts(c.out, products, c.app.Cart.Currency())
	return nil
}

func (c *cli) product(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}

	p, err := c.app.API.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("API.GetProduct: %w", err)
	}

	printProduct(c.out, p, c.app.Cart.Currency(), c.app.Wishlist.Contains(p.ID))
	return nil
}

func (c *cli) cart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	fs := flag.NewFlagSet("cart "+args[0], flag.ContinueOnError)
	var (
		productID int64
		size      string
		color     string
		qty       int
	)
	fs.Int64Var(&productID, "product", 0, "Product id")
	fs.StringVar(&size, "size", "", "Size")
	fs.StringVar(&color, "color", "", "Colour (default: first listed)")
	fs.IntVar(&qty, "qty", 1, "Quantity")
	if err := fs.Parse(args[1:]); err != nil {
		return errUsage
	}

	switch args[0] {
	case "show":
		printCart(c.out, c.app.Cart.Snapshot(), c.app.Checkout.Summary())
		return nil
	case "add":
		line, err := c.app.AddToCart(ctx, productID, size, color, qty)
		if err != nil {
			return fmt.Errorf("AddToCart: %w", err)
		}
		if line.Quantity < qty {
			c.app.Terminal.Info("Stock limitado", fmt.Sprintf("Solo se agregaron %d unidades.", line.Quantity))
		}
		c.app.Terminal.Success("Agregado al carrito", fmt.Sprintf("%d × %s (%s, %s)", line.Quantity, line.Name, line.Size, line.Color))
		return nil
	case "remove":
		if err := c.app.Cart.RemoveItem(productID, size, color); err != nil {
			return fmt.Errorf("Cart.RemoveItem: %w", err)
		}
		printCart(c.out, c.app.Cart.Snapshot(), c.app.Checkout.Summary())
		return nil
	case "clear":
		if err := c.app.Cart.Clear(); err != nil {
			return fmt.Errorf("Cart.Clear: %w", err)
		}
		c.app.Terminal.Info("Carrito vacío", "")
		return nil
	default:
		return errUsage
	}
}

func (c *cli) wishlist(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "show":
		printProducts(c.out, c.app.Wishlist.Products(), c.app.Cart.Currency())
		return nil
	case "toggle":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		p, added, err := c.app.ToggleWishlist(ctx, id)
		if err != nil {
			return fmt.Errorf("ToggleWishlist: %w", err)
		}
		if added {
			c.app.Terminal.Success("Agregado a favoritos", p.Name)
		} else {
			c.app.Terminal.Info("Eliminado de favoritos", p.Name)
		}
		return nil
	default:
		return errUsage
	}
}

func (c *cli) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	var (
		form   checkout.Form
		method string
	)
	fs.StringVar(&form.Name, "name", "", "Recipient name")
	fs.StringVar(&form.Phone, "phone", "", "Recipient phone")
	fs.StringVar(&form.Address, "address", "", "Delivery address")
	fs.StringVar(&form.District, "district", "", "Delivery district (see: storefront districts)")
	fs.StringVar(&form.Reference, "reference", "", "Address reference")
	fs.StringVar(&method, "method", string(domain.PaymentCard), "tarjeta, yape or plin")
	fs.StringVar(&form.CardNumber, "card", "", "Card number")
	fs.StringVar(&form.CardExpiry, "expiry", "", "Card expiry (MM/YY)")
	fs.StringVar(&form.CardCVV, "cvv", "", "Card CVV")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	form.Method = domain.PaymentMethod(method)

	if err := c.app.Checkout.Begin(); err != nil {
		return fmt.Errorf("Checkout.Begin: %w", err)
	}

	summary := c.app.Checkout.Summary()
	printCart(c.out, c.app.Cart.Snapshot(), summary)

	receipt, err := c.app.Checkout.Submit(ctx, form)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(c.out, "  %s: %s\n", f.Field, f.Message)
			}
		}
		return errReported
	}

	fmt.Fprintf(c.out, "Orden %s por %s\n", receipt.OrderNumber, domain.NewMoney(receipt.Total, summary.Total.Currency))
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	var creds domain.Credentials
	fs.StringVar(&creds.Email, "email", "", "Email")
	fs.StringVar(&creds.Password, "password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	user, err := c.app.API.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("API.Login: %w", err)
	}

	c.app.Terminal.Success("Bienvenido", user.Name)
	return nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var reg domain.Registration
	fs.StringVar(&reg.Name, "name", "", "Full name")
	fs.StringVar(&reg.Email, "email", "", "Email")
	fs.StringVar(&reg.Password, "password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	user, err := c.app.API.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("API.Register: %w", err)
	}

	c.app.Terminal.Success("Cuenta creada", user.Name)
	return nil
}

func (c *cli) profile(ctx context.Context) error {
	p, err := c.app.API.Profile(ctx)
	if err != nil {
		return fmt.Errorf("API.Profile: %w", err)
	}

	printProfile(c.out, p)
	return nil
}

func (c *cli) orders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "mine":
		orders, err := c.app.API.MyOrders(ctx)
		if err != nil {
			return fmt.Errorf("API.MyOrders: %w", err)
		}
		printOrders(c.out, orders, c.app.Cart.Currency())
		return nil
	case "get":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		order, err := c.app.API.GetOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("API.GetOrder: %w", err)
		}
		printOrder(c.out, order, c.app.Cart.Currency())
		return nil
	default:
		return errUsage
	}
}

func (c *cli) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	api := c.app.API
	cur := c.app.Cart.Currency()

	switch args[0] {
	case "users":
		users, err := api.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("API.ListUsers: %w", err)
		}
		printUsers(c.out, users, cur)
	case "user":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		user, err := api.GetUser(ctx, id)
		if err != nil {
			return fmt.Errorf("API.GetUser: %w", err)
		}
		printUsers(c.out, []domain.AdminUser{user}, cur)
	case "role":
		id, err := argID(args, 1)
		if err != nil || len(args) < 3 {
			return errUsage
		}
		if err := api.UpdateUserRole(ctx, id, domain.Role(args[2])); err != nil {
			return fmt.Errorf("API.UpdateUserRole: %w", err)
		}
		c.app.Terminal.Success("Rol actualizado", args[2])
	case "active":
		id, err := argID(args, 1)
		if err != nil || len(args) < 3 {
			return errUsage
		}
		active, err := strconv.ParseBool(args[2])
		if err != nil {
			return fmt.Errorf("strconv.ParseBool: %w", err)
		}
		if err := api.UpdateUserActive(ctx, id, active); err != nil {
			return fmt.Errorf("API.UpdateUserActive: %w", err)
		}
		c.app.Terminal.Success("Estado actualizado", args[2])
	case "delete-user":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		if err := api.DeleteUser(ctx, id); err != nil {
			return fmt.Errorf("API.DeleteUser: %w", err)
		}
		c.app.Terminal.Success("Usuario eliminado", "")
	case "orders":
		orders, err := api.AllOrders(ctx)
		if err != nil {
			return fmt.Errorf("API.AllOrders: %w", err)
		}
		printOrders(c.out, orders, cur)
	case "stats":
		stats, err := api.DashboardStats(ctx)
		if err != nil {
			return fmt.Errorf("API.DashboardStats: %w", err)
		}
		printStats(c.out, stats, cur)
	case "product-create", "product-update":
		return c.saveProduct(ctx, args[0], args[1:])
	case "product-delete":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		if err := api.DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("API.DeleteProduct: %w", err)
		}
		c.app.Terminal.Success("Producto eliminado", "")
	default:
		return errUsage
	}

	return nil
}

func (c *cli) saveProduct(ctx context.Context, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	var path string
	fs.StringVar(&path, "file", "", "JSON product payload")
	if err := fs.Parse(args); err != nil || path == "" {
		return errUsage
	}

	payload, err := readPayload(path)
	if err != nil {
		return fmt.Errorf("readPayload: %w", err)
	}

	var p domain.Product
	if cmd == "product-create" {
		p, err = c.app.API.CreateProduct(ctx, payload)
	} else {
		var id int64
		if id, err = argID(fs.Args(), 0); err != nil {
			return err
		}
		p, err = c.app.API.UpdateProduct(ctx, id, payload)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	c.app.Terminal.Success("Producto guardado", fmt.Sprintf("#%d %s", p.ID, p.Name))
	return nil
}

func readPayload(path string) (domain.ProductPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProductPayload{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	var payload domain.ProductPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.ProductPayload{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return payload, nil
}

func argID(args []string, i int) (int64, error) {
	if len(args) <= i {
		return 0, errUsage
	}

	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id[%s] is not valid", args[i])
	}

	return id, nil
}

func parsePrice(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	return decimal.NewNullDecimal(d), nil
}

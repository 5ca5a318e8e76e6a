package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const dateLayout = "2006-01-02 15:04"

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func money(amount decimal.Decimal, cur currency.Unit) string {
	return domain.NewMoney(amount, cur).String()
}

func printProducts(out io.Writer, products []domain.Product, cur currency.Unit) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No hay productos.")
		return
	}

	w := newTable(out)
	fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tCATEGORÍA\tSTOCK\t")
	for _, p := range products {
		name := p.Name
		if p.IsNew {
			name += " (nuevo)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t\n", p.ID, name, money(p.Price, cur), p.Category, p.TotalStock)
	}
	_ = w.Flush()
}

func printProduct(out io.Writer, p domain.Product, cur currency.Unit, favorite bool) {
	fmt.Fprintf(out, "#%d %s  %s\n", p.ID, p.Name, money(p.Price, cur))
	if favorite {
		fmt.Fprintln(out, "♥ en favoritos")
	}
	if p.Description != "" {
		fmt.Fprintln(out, p.Description)
	}
	fmt.Fprintf(out, "%s · %s · %s\n", p.Gender, p.Category, p.Style)
	if p.Material != "" {
		fmt.Fprintf(out, "Material: %s\n", p.Material)
	}

	colors := make([]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, c.Name)
	}
	if len(colors) == 0 {
		colors = append(colors, domain.DefaultColor)
	}
	fmt.Fprintf(out, "Colores: %s\n", strings.Join(colors, ", "))

	w := newTable(out)
	fmt.Fprintln(w, "TALLA\tSTOCK\t")
	for _, size := range domain.Sizes {
		if stock := p.StockFor(size); stock > 0 {
			fmt.Fprintf(w, "%s\t%d\t\n", size, stock)
		}
	}
	_ = w.Flush()
}

func printCart(out io.Writer, cart domain.Cart, summary checkout.Summary) {
	if cart.IsEmpty() {
		fmt.Fprintln(out, "Tu carrito está vacío.")
		return
	}

	cur := summary.Total.Currency

	w := newTable(out)
	fmt.Fprintln(w, "ID\tPRODUCTO\tTALLA\tCOLOR\tCANT.\tPRECIO\tSUBTOTAL\t")
	for _, l := range cart.Lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t\n",
			l.ProductID, l.Name, l.Size, l.Color, l.Quantity, money(l.UnitPrice, cur), money(l.Subtotal(), cur))
	}
	_ = w.Flush()

	fmt.Fprintf(out, "Artículos: %d\n", cart.TotalItems())
	fmt.Fprintf(out, "Subtotal:  %s\n", summary.Subtotal)
	if summary.Shipping.IsZero() {
		fmt.Fprintln(out, "Envío:     Gratis")
	} else {
		fmt.Fprintf(out, "Envío:     %s\n", summary.Shipping)
	}
	fmt.Fprintf(out, "Total:     %s\n", summary.Total)
}

func printProfile(out io.Writer, p domain.Profile) {
	fmt.Fprintf(out, "%s <%s>\n", p.Name, p.Email)
	fmt.Fprintf(out, "Rol: %s\n", p.Role)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(out, "Cliente desde: %s\n", p.CreatedAt.Format("2006-01-02"))
	}
}

func printOrders(out io.Writer, orders []domain.OrderSummary, cur currency.Unit) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No hay pedidos.")
		return
	}

	w := newTable(out)
	fmt.Fprintln(w, "ID\tNÚMERO\tFECHA\tESTADO\tPAGO\tTOTAL\t")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			o.ID, o.OrderNumber, o.CreatedAt.Format(dateLayout), o.Status, o.PaymentMethod, money(o.Total, cur))
	}
	_ = w.Flush()
}

func printOrder(out io.Writer, o domain.Order, cur currency.Unit) {
	fmt.Fprintf(out, "Orden %s (%s)\n", o.OrderNumber, o.CreatedAt.Format(dateLayout))
	fmt.Fprintf(out, "Estado: %s · Pago: %s (%s)\n", o.Status, o.PaymentStatus, o.PaymentMethod)
	fmt.Fprintf(out, "Envío a: %s, %s, %s (%s)\n", o.ShippingName, o.ShippingAddress, o.ShippingDistrict, o.ShippingPhone)
	if o.ShippingReference != nil && *o.ShippingReference != "" {
		fmt.Fprintf(out, "Referencia: %s\n", *o.ShippingReference)
	}

	w := newTable(out)
	fmt.Fprintln(w, "PRODUCTO\tTALLA\tCOLOR\tCANT.\tSUBTOTAL\t")
	for _, it := range o.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t\n", it.ProductName, it.Size, it.Color, it.Quantity, money(it.Subtotal, cur))
	}
	_ = w.Flush()

	fmt.Fprintf(out, "Total: %s\n", money(o.Total, cur))
}

func printUsers(out io.Writer, users []domain.AdminUser, cur currency.Unit) {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL\tACTIVO\tPEDIDOS\tGASTADO\t")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%d\t%s\t\n",
			u.ID, u.Name, u.Email, u.Role, u.Active, u.TotalOrders, money(u.TotalSpent, cur))
	}
	_ = w.Flush()
}

func printStats(out io.Writer, s domain.DashboardStats, cur currency.Unit) {
	fmt.Fprintf(out, "Ventas totales: %s\n", money(s.TotalSales, cur))
	fmt.Fprintf(out, "Pedidos: %d · Usuarios: %d\n", s.TotalOrders, s.TotalUsers)

	if len(s.SalesByCategory) > 0 {
		fmt.Fprintln(out)
		w := newTable(out)
		fmt.Fprintln(w, "CATEGORÍA\tUNIDADES\tVENTAS\t")
		for _, c := range s.SalesByCategory {
			fmt.Fprintf(w, "%s\t%d\t%s\t\n", c.Category, c.QuantitySold, money(c.TotalSales, cur))
		}
		_ = w.Flush()
	}

	if len(s.RecentOrders) > 0 {
		fmt.Fprintln(out)
		w := newTable(out)
		fmt.Fprintln(w, "NÚMERO\tCLIENTE\tESTADO\tTOTAL\t")
		for _, o := range s.RecentOrders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", o.OrderNumber, o.UserName, o.Status, money(o.Total, cur))
		}
		_ = w.Flush()
	}
}

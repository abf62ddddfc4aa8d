package notify

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
)

// Context is the flat key-value view of an order that templates render from.
type Context map[string]string

// Template renders one event kind into a push message. Audience picks who
// receives it.
type Template struct {
	Audience port.RecipientRole
	Title    func(c Context) string
	Body     func(c Context) string
	Payload  func(c Context) map[string]string
}

// BuildContext extracts the template inputs from an order. Amounts are
// formatted to two decimal places.
func BuildContext(order *domain.Order) Context {
	c := Context{
		"orderId":         strconv.FormatUint(order.ID, 10),
		"status":          string(order.Status),
		"customerName":    order.CustomerName,
		"customerPhone":   order.CustomerPhone,
		"customerAddress": order.CustomerAddress,
		"totalAmount":     formatAmount(order.TotalAmount),
		"companyName":     "Jibli",
		"courierName":     "Livreur",
	}
	if order.Company != nil {
		c["companyName"] = order.Company.Name
	}
	if order.Courier != nil {
		c["courierName"] = order.Courier.FullName
	}
	return c
}

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return fmt.Sprintf("%.2f", f)
}

const currency = "TND"

func orderPayload(c Context, route string, eventType string) map[string]string {
	return map[string]string{
		"route":   route,
		"orderId": c["orderId"],
		"type":    eventType,
		"status":  c["status"],
	}
}

// templates holds one entry per event kind; a kind without an entry is
// silently not delivered.
var templates = map[domain.EventKind]Template{
	domain.EventOrderCreated: {
		Audience: port.RoleCompanyStaff,
		Title:    func(c Context) string { return "Nouvelle Commande" },
		Body: func(c Context) string {
			return fmt.Sprintf("Commande #%s de %s\nMontant: %s %s\nAdresse: %s\nTél: %s",
				c["orderId"], c["customerName"], c["totalAmount"], currency,
				c["customerAddress"], c["customerPhone"])
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/orders", "ORDER_CREATED")
			p["customerName"] = c["customerName"]
			p["totalAmount"] = c["totalAmount"]
			p["companyName"] = c["companyName"]
			return p
		},
	},
	domain.EventOrderAccepted: {
		Audience: port.RoleOrderCustomer,
		Title:    func(c Context) string { return "Commande Acceptée" },
		Body: func(c Context) string {
			return fmt.Sprintf("Votre commande #%s est en préparation\nMagasin: %s\nMontant: %s %s",
				c["orderId"], c["companyName"], c["totalAmount"], currency)
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/orders", "ORDER_ACCEPTED")
			p["companyName"] = c["companyName"]
			return p
		},
	},
	domain.EventDeliveryAssigned: {
		Audience: port.RoleOrderCourier,
		Title:    func(c Context) string { return "Nouvelle Livraison Assignée" },
		Body: func(c Context) string {
			return fmt.Sprintf("Commande #%s à livrer\nClient: %s\nAdresse: %s\nTél: %s\nMontant: %s %s",
				c["orderId"], c["customerName"], c["customerAddress"],
				c["customerPhone"], c["totalAmount"], currency)
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/deliveries", "DELIVERY_ASSIGNED")
			p["customerName"] = c["customerName"]
			p["customerAddress"] = c["customerAddress"]
			p["customerPhone"] = c["customerPhone"]
			return p
		},
	},
	domain.EventDeliveryPickedUp: {
		Audience: port.RoleCompanyStaff,
		Title:    func(c Context) string { return "Colis Récupéré & En Route" },
		Body: func(c Context) string {
			return fmt.Sprintf("Commande #%s en cours de livraison\nLivreur: %s\nDestination: %s",
				c["orderId"], c["courierName"], c["customerName"])
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/orders", "DELIVERY_PICKED_UP")
			p["courierName"] = c["courierName"]
			return p
		},
	},
	domain.EventDeliveryRejected: {
		Audience: port.RoleCompanyStaff,
		Title:    func(c Context) string { return "Livraison Rejetée" },
		Body: func(c Context) string {
			return fmt.Sprintf("Commande #%s a été rejetée\nLivreur: %s\nAction requise: réassigner à un autre livreur",
				c["orderId"], c["courierName"])
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/orders", "DELIVERY_REJECTED")
			p["courierName"] = c["courierName"]
			return p
		},
	},
	domain.EventOrderDeliveredMerchant: {
		Audience: port.RoleCompanyStaff,
		Title:    func(c Context) string { return "Commande Livrée avec Succès" },
		Body: func(c Context) string {
			return fmt.Sprintf("Commande #%s livrée avec succès\nClient: %s\nMontant reçu: %s %s",
				c["orderId"], c["customerName"], c["totalAmount"], currency)
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/orders", "ORDER_DELIVERED")
			p["totalAmount"] = c["totalAmount"]
			return p
		},
	},
	domain.EventOrderDeliveredCustomer: {
		Audience: port.RoleOrderCustomer,
		Title:    func(c Context) string { return "Commande Reçue!" },
		Body: func(c Context) string {
			return fmt.Sprintf("Votre commande #%s a été livrée avec succès!\nMontant payé: %s %s\nN'oubliez pas de noter le vendeur",
				c["orderId"], c["totalAmount"], currency)
		},
		Payload: func(c Context) map[string]string {
			p := orderPayload(c, "/orders", "ORDER_DELIVERED")
			p["totalAmount"] = c["totalAmount"]
			return p
		},
	},
}

// TemplateFor exposes the template table for tests.
func TemplateFor(kind domain.EventKind) (Template, bool) {
	t, ok := templates[kind]
	return t, ok
}

package esignapimodels

import (
	"sort"
	"strconv"
)

type RecipientRole string

const (
	RoleSigner     RecipientRole = "signer"
	RoleCarbonCopy RecipientRole = "carbonCopy"
)

const routingOrderMax = 1 << 30

type Recipient interface {
	Role() RecipientRole
	GetEmail() string
	GetRecipientID() string
	GetRoutingOrder() string
}

type RecipientBase struct {
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	RecipientID  string `json:"recipientId,omitempty"`
	RoutingOrder string `json:"routingOrder,omitempty"` // меньшее значение получает раньше
}

func (r RecipientBase) GetEmail() string {
	return r.Email
}

func (r RecipientBase) GetRecipientID() string {
	return r.RecipientID
}

func (r RecipientBase) GetRoutingOrder() string {
	return r.RoutingOrder
}

type Signer struct {
	RecipientBase
	Tabs *Tabs `json:"tabs,omitempty"`
}

func (s Signer) Role() RecipientRole {
	return RoleSigner
}

type CarbonCopy struct {
	RecipientBase
}

func (c CarbonCopy) Role() RecipientRole {
	return RoleCarbonCopy
}

func routingOrder(r Recipient) int {
	order, err := strconv.Atoi(r.GetRoutingOrder())
	if err != nil {
		// без порядка сервис отправляет последним
		return routingOrderMax
	}
	return order
}

func sortByRoutingOrder(list []Recipient) {
	sort.SliceStable(list, func(i, j int) bool {
		return routingOrder(list[i]) < routingOrder(list[j])
	})
}

package master

import "strings"

// Predicate is a node of the master matching query. Repositories compile it to
// SQL; Eval interprets it over an in-memory Candidate.
type Predicate interface {
	isPredicate()
}

type SpecialityIs struct{ Name string }

type RatingAtLeast struct{ Value float64 }

type RatingAtMost struct{ Value float64 }

// NoOrderFromEmailSuffix holds when no order of the master belongs to a client
// whose email ends with Suffix, ignoring case. Masters without orders always
// satisfy it.
type NoOrderFromEmailSuffix struct{ Suffix string }

type And []Predicate

type Or []Predicate

func (SpecialityIs) isPredicate()           {}
func (RatingAtLeast) isPredicate()          {}
func (RatingAtMost) isPredicate()           {}
func (NoOrderFromEmailSuffix) isPredicate() {}
func (And) isPredicate()                    {}
func (Or) isPredicate()                     {}

// Candidate is what Eval needs to know about a master.
type Candidate struct {
	Speciality   string
	Rating       float64
	ClientEmails []string // emails of the clients of every order of the master
}

func Eval(p Predicate, c Candidate) bool {
	switch n := p.(type) {
	case SpecialityIs:
		return c.Speciality == n.Name
	case RatingAtLeast:
		return c.Rating >= n.Value
	case RatingAtMost:
		return c.Rating <= n.Value
	case NoOrderFromEmailSuffix:
		suffix := strings.ToLower(n.Suffix)
		for _, email := range c.ClientEmails {
			if strings.HasSuffix(strings.ToLower(email), suffix) {
				return false
			}
		}
		return true
	case And:
		for _, child := range n {
			if !Eval(child, c) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range n {
			if Eval(child, c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

const (
	Electrician = "Электрик"
	Painter     = "Маляр"
	Plumber     = "Сантехник"
	Carpenter   = "Плотник"
)

// Query is one labeled result set of the professional matching.
type Query struct {
	Key   string
	Where Predicate
}

// ProfessionalQueries returns the two sets of the "pro" selection in response order.
func ProfessionalQueries() []Query {
	return []Query{
		{
			Key: "electricians_and_painters",
			Where: And{
				Or{SpecialityIs{Electrician}, SpecialityIs{Painter}},
				RatingAtLeast{4},
				NoOrderFromEmailSuffix{"gmail.com"},
			},
		},
		{
			Key: "plumbers_and_carpenters",
			Where: And{
				Or{SpecialityIs{Plumber}, SpecialityIs{Carpenter}},
				RatingAtMost{3},
				NoOrderFromEmailSuffix{"mail.ru"},
			},
		},
	}
}

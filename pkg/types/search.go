// Copyright SilloVV, 2026. All rights reserved.

// Package types defines shared data structures for the Legifrance
// question-answering pipeline: the search payload sent to the API, the
// flattened result records, and the normalized document metadata handed
// to the synthesis stage.
package types

import "fmt"

// Field types accepted by the Legifrance search API (typeChamp).
const (
	ChampAll        = "ALL"
	ChampTitle      = "TITLE"
	ChampTexte      = "TEXTE"
	ChampArticle    = "ARTICLE"
	ChampNumArticle = "NUM_ARTICLE"
)

// Search modes accepted by the Legifrance search API (typeRecherche).
const (
	RechercheTousLesMots = "TOUS_LES_MOTS_DANS_UN_CHAMP"
	RechercheUnDesMots   = "UN_DES_MOTS"
	RechercheExacte      = "EXACTE"
)

// Boolean operators accepted by the search API.
const (
	OperateurEt = "ET"
	OperateurOu = "OU"
)

// SearchQuery is the JSON payload sent to the /search endpoint. The field
// names (including the accented "proximité") are fixed by the upstream API
// and must not be renamed.
type SearchQuery struct {
	Recherche Recherche `json:"recherche" yaml:"recherche"`

	// Fond is the corpus scope ("ALL", "JURI", "LODA_DATE", ...).
	Fond string `json:"fond" yaml:"fond"`
}

// Recherche holds the field-criteria groups and pagination of a query.
type Recherche struct {
	Champs     []FieldGroup `json:"champs" yaml:"champs"`
	PageNumber int          `json:"pageNumber" yaml:"page_number"`
	PageSize   int          `json:"pageSize" yaml:"page_size"`
	Sort       string       `json:"sort" yaml:"sort"`
}

// FieldGroup is one searchable field with its criteria.
type FieldGroup struct {
	TypeChamp string      `json:"typeChamp" yaml:"type_champ"`
	Criteres  []Criterion `json:"criteres" yaml:"criteres"`
	Operateur string      `json:"operateur" yaml:"operateur"`
}

// Criterion is a single search criterion within a field group.
type Criterion struct {
	TypeRecherche string `json:"typeRecherche" yaml:"type_recherche"`
	Valeur        string `json:"valeur" yaml:"valeur"`
	Operateur     string `json:"operateur" yaml:"operateur"`

	// Proximite is the maximum word distance between the terms of Valeur.
	// Only meaningful for TOUS_LES_MOTS_DANS_UN_CHAMP; the API silently
	// ignores it for UN_DES_MOTS, so Validate rejects that combination.
	Proximite int `json:"proximité,omitempty" yaml:"proximite,omitempty"`
}

// Validate checks the structural invariants of the query before it is sent
// to the search API.
func (q SearchQuery) Validate() error {
	if len(q.Recherche.Champs) == 0 {
		return fmt.Errorf("search query has no field groups")
	}
	for i, champ := range q.Recherche.Champs {
		if len(champ.Criteres) == 0 {
			return fmt.Errorf("field group %d (%s) has no criteria", i, champ.TypeChamp)
		}
		for j, crit := range champ.Criteres {
			if crit.Valeur == "" {
				return fmt.Errorf("criterion %d of field group %d has an empty value", j, i)
			}
			if crit.Proximite > 0 && crit.TypeRecherche != RechercheTousLesMots {
				return fmt.Errorf("criterion %d of field group %d: proximity requires %s, got %s",
					j, i, RechercheTousLesMots, crit.TypeRecherche)
			}
		}
	}
	return nil
}

// SearchResultRecord is one matched document, flattened from the nested
// search response tree (document → titles → sections → extracts → values).
type SearchResultRecord struct {
	Type     string     `json:"type" yaml:"type"`
	Nature   string     `json:"nature" yaml:"nature"`
	Origin   string     `json:"origin" yaml:"origin"`
	Date     string     `json:"date" yaml:"date"`
	Titles   []TitleRef `json:"titles" yaml:"titles"`
	Sections []Section  `json:"sections" yaml:"sections"`
}

// TitleRef is one (title, corpus id, document id) triple of a result.
type TitleRef struct {
	Title string `json:"title" yaml:"title"`
	CID   string `json:"cid" yaml:"cid"`
	ID    string `json:"id" yaml:"id"`
}

// Section is a subdivision of a matched document.
type Section struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	DateVersion string    `json:"dateVersion" yaml:"date_version"`
	LegalStatus string    `json:"legalStatus" yaml:"legal_status"`
	Extracts    []Extract `json:"extracts" yaml:"extracts"`
}

// Extract is a matched passage within a section. Values holds the actual
// matched text fragments.
type Extract struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Num         string   `json:"num" yaml:"num"`
	LegalStatus string   `json:"legalStatus" yaml:"legal_status"`
	Values      []string `json:"values" yaml:"values"`
}

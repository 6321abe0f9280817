// Copyright SilloVV, 2026. All rights reserved.

package payload

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed assets/*.txt
var assets embed.FS

// systemPromptTmpl is the fixed instruction given to the model for payload
// generation. The reference sections (field taxonomy, fonds, search types,
// payload format, worked example) are embedded at build time and assembled
// once at startup.
var systemPromptTmpl = template.Must(template.New("payload").Parse(`Tu es un expert Analyste Juridique.
La seule réponse que tu dois fournir est un payload JSON.

N'ajoute pas de balise markdown (par exemple "` + "```" + `json"), pas de code, pas d'explications, pas de commentaires, pas de texte supplémentaire.

Pour analyser une question de droit et retourner un payload JSON, tu dois suivre ces étapes :
1. Supprime au maximum les mots vides ou inutiles de la question.
2. Si un concept juridique secondaire ou périphérique est présent dans la question, il doit être supprimé.
3. Définis et divise les champs pertinents pour la recherche dans l'API.

RÈGLES CRITIQUES POUR LA CRÉATION DES CRITÈRES DE RECHERCHE :
- Sépare toujours ta recherche en DEUX CRITÈRES DISTINCTS quand tu cherches à la fois des expressions composées ET leurs définitions :
  a) Premier critère : pour les expressions composées (comme "lien subordination"), utilise "TOUS_LES_MOTS_DANS_UN_CHAMP" avec une proximité entre 3 et 15.
  b) Second critère, UNIQUEMENT SI VRAIMENT NÉCESSAIRE : pour les mots définissant une relation complexe, utilise "UN_DES_MOTS" sans paramètre de proximité.
- NE JAMAIS mélanger ces deux types de termes dans un même critère.
- NE JAMAIS utiliser le type de recherche "UN_DES_MOTS" avec une proximité, car la proximité n'a pas d'effet dans ce cas.

Exemple travaillé :
{{.Exemple}}

4. Définis une proximité maximum en nombre de mots entre les termes d'expressions composées (ex : "société" et "civile" à 1 mot maximum de distance).

5. Définis le type de recherche parmi les suivants :
{{.TypeRecherche}}

6. Choisis le fond adapté à la question :
{{.Fonds}}

7. Formule le payload JSON en respectant strictement la structure suivante :
{{.Format}}

Il est possible de définir plusieurs champs et de choisir parmi les opérateurs "OU" et "ET".
Voici les champs disponibles :
{{.Champs}}

# Réponse :
Respecte strictement le format JSON, sans explications supplémentaires.
`))

// SystemPrompt assembles the payload-generation instruction from the
// embedded reference assets. It is deterministic; failures can only come
// from a corrupted build and are returned rather than panicking.
func SystemPrompt() (string, error) {
	read := func(name string) (string, error) {
		b, err := assets.ReadFile("assets/" + name)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	var data struct {
		Exemple, TypeRecherche, Fonds, Format, Champs string
	}
	var err error
	if data.Exemple, err = read("exemple.txt"); err != nil {
		return "", err
	}
	if data.TypeRecherche, err = read("type_de_recherche.txt"); err != nil {
		return "", err
	}
	if data.Fonds, err = read("fonds.txt"); err != nil {
		return "", err
	}
	if data.Format, err = read("format.txt"); err != nil {
		return "", err
	}
	if data.Champs, err = read("type_champs.txt"); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := systemPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package badges

import "fmt"

type RequirementType string

const (
	ReqTasksCompleted   RequirementType = "tasks_completed"
	ReqTimeLogged       RequirementType = "time_logged"
	ReqCommentsMade     RequirementType = "comments_made"
	ReqTagsCreated      RequirementType = "tags_created"
	ReqWorkflowsCreated RequirementType = "workflows_created"
	ReqStreakDays       RequirementType = "streak_days"
	ReqTeamHelp         RequirementType = "team_help"
	ReqQualityScore     RequirementType = "quality_score"
)

type Category string

const (
	CategoryProductivity  Category = "productivity"
	CategoryCollaboration Category = "collaboration"
	CategoryQuality       Category = "quality"
	CategoryLeadership    Category = "leadership"
	CategorySpecial       Category = "special"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Requirement is a single counter threshold a badge demands.
type Requirement struct {
	Type   RequirementType `json:"type"`
	Target int             `json:"target"`
}

// Badge is an immutable catalog entry. All requirements must be met for the
// badge to unlock; Points is awarded exactly once.
type Badge struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Icon         string        `json:"icon"`
	Category     Category      `json:"category"`
	Rarity       Rarity        `json:"rarity"`
	Points       int           `json:"points"`
	Requirements []Requirement `json:"requirements"`
}

// Catalog is the ordered badge set. Evaluation and API responses follow
// catalog order.
type Catalog []Badge

// Validate rejects malformed catalog entries before they can reach the
// evaluator: duplicate ids, missing requirements, non-positive points or
// targets.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, b := range c {
		if b.ID == "" {
			return fmt.Errorf("badge %q has empty id", b.Name)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Points <= 0 {
			return fmt.Errorf("badge %q has non-positive points %d", b.ID, b.Points)
		}
		if len(b.Requirements) == 0 {
			return fmt.Errorf("badge %q has no requirements", b.ID)
		}
		for _, req := range b.Requirements {
			if req.Target <= 0 {
				return fmt.Errorf("badge %q has non-positive target %d for %s", b.ID, req.Target, req.Type)
			}
		}
	}
	return nil
}

// Get returns the badge with the given id.
func (c Catalog) Get(id string) (Badge, bool) {
	for _, b := range c {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Merge overlays override definitions onto the catalog by id. Unknown ids are
// appended after the built-in set.
func (c Catalog) Merge(overrides []Badge) Catalog {
	merged := make(Catalog, len(c))
	copy(merged, c)
	for _, o := range overrides {
		replaced := false
		for i, b := range merged {
			if b.ID == o.ID {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}
	return merged
}

// Default returns the built-in badge set.
func Default() Catalog {
	return Catalog{
		{
			ID: "premier_pas", Name: "Premier Pas", Description: "Terminer sa première tâche",
			Icon: "🚀", Category: CategoryProductivity, Rarity: RarityCommon, Points: 10,
			Requirements: []Requirement{{Type: ReqTasksCompleted, Target: 1}},
		},
		{
			ID: "productif", Name: "Productif", Description: "Terminer 10 tâches",
			Icon: "⚙️", Category: CategoryProductivity, Rarity: RarityCommon, Points: 50,
			Requirements: []Requirement{{Type: ReqTasksCompleted, Target: 10}},
		},
		{
			ID: "acharne", Name: "Acharné", Description: "Terminer 50 tâches",
			Icon: "🔥", Category: CategoryProductivity, Rarity: RarityRare, Points: 200,
			Requirements: []Requirement{{Type: ReqTasksCompleted, Target: 50}},
		},
		{
			ID: "maitre_des_taches", Name: "Maître des Tâches", Description: "Terminer 100 tâches",
			Icon: "👑", Category: CategoryProductivity, Rarity: RarityEpic, Points: 500,
			Requirements: []Requirement{{Type: ReqTasksCompleted, Target: 100}},
		},
		{
			ID: "marathonien", Name: "Marathonien", Description: "Enregistrer 50 heures de travail",
			Icon: "⏱️", Category: CategoryProductivity, Rarity: RarityRare, Points: 100,
			Requirements: []Requirement{{Type: ReqTimeLogged, Target: 3000}},
		},
		{
			ID: "communicatif", Name: "Communicatif", Description: "Publier 50 commentaires",
			Icon: "💬", Category: CategoryCollaboration, Rarity: RarityCommon, Points: 75,
			Requirements: []Requirement{{Type: ReqCommentsMade, Target: 50}},
		},
		{
			ID: "organisateur", Name: "Organisateur", Description: "Créer 20 étiquettes",
			Icon: "🏷️", Category: CategoryProductivity, Rarity: RarityCommon, Points: 60,
			Requirements: []Requirement{{Type: ReqTagsCreated, Target: 20}},
		},
		{
			ID: "architecte", Name: "Architecte", Description: "Créer 5 workflows",
			Icon: "📐", Category: CategoryLeadership, Rarity: RarityEpic, Points: 150,
			Requirements: []Requirement{{Type: ReqWorkflowsCreated, Target: 5}},
		},
		{
			ID: "assidu", Name: "Assidu", Description: "7 jours d'activité consécutifs",
			Icon: "📅", Category: CategorySpecial, Rarity: RarityRare, Points: 80,
			Requirements: []Requirement{{Type: ReqStreakDays, Target: 7}},
		},
		{
			ID: "inarretable", Name: "Inarrêtable", Description: "30 jours d'activité consécutifs",
			Icon: "⚡", Category: CategorySpecial, Rarity: RarityLegendary, Points: 300,
			Requirements: []Requirement{{Type: ReqStreakDays, Target: 30}},
		},
		{
			ID: "esprit_d_equipe", Name: "Esprit d'Équipe", Description: "Aider 10 collègues",
			Icon: "🤝", Category: CategoryCollaboration, Rarity: RarityRare, Points: 120,
			Requirements: []Requirement{{Type: ReqTeamHelp, Target: 10}},
		},
		{
			ID: "perfectionniste", Name: "Perfectionniste", Description: "Atteindre un score qualité de 95",
			Icon: "✨", Category: CategoryQuality, Rarity: RarityEpic, Points: 250,
			Requirements: []Requirement{{Type: ReqQualityScore, Target: 95}},
		},
		{
			ID: "polyvalent", Name: "Polyvalent", Description: "Exceller sur plusieurs fronts",
			Icon: "🧩", Category: CategorySpecial, Rarity: RarityEpic, Points: 180,
			Requirements: []Requirement{
				{Type: ReqTasksCompleted, Target: 25},
				{Type: ReqCommentsMade, Target: 25},
				{Type: ReqTagsCreated, Target: 10},
			},
		},
		{
			ID: "legende", Name: "Légende", Description: "Marquer l'histoire de l'équipe",
			Icon: "🏆", Category: CategorySpecial, Rarity: RarityLegendary, Points: 1000,
			Requirements: []Requirement{
				{Type: ReqTasksCompleted, Target: 200},
				{Type: ReqStreakDays, Target: 30},
				{Type: ReqQualityScore, Target: 90},
			},
		},
	}
}

package storage

import (
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

// Compile-time backend checks.
var (
	_ Store = (*Memory)(nil)
	_ Store = (*DB)(nil)
)

// SeedDemoData loads the 2025 rally roster and course so the public
// display has content without any admin setup. Intended for the memory
// backend; a store that already holds the roster is left untouched.
func SeedDemoData(s Store) error {
	if _, err := s.GetTeamByCode("TEAM01"); err == nil {
		return nil
	}

	teams := []models.Team{
		{Name: "Bébittes moniteur", Code: "TEAM01", Captain: "Mishell Gauthier", Email: "michel.gauthier.104@facebook.com", Phone: "418-555-0001", Score: 82},
		{Name: "Bestioles monitrice", Code: "TEAM02", Captain: "Sandra Brasseur Jeffrey", Email: "sandra.b.jeffrey@facebook.com", Phone: "418-555-0002", Score: 62},
		{Name: "Shipshaw B&C", Code: "TEAM03", Captain: "Véronique Jacques", Email: "orev.jack@facebook.com", Phone: "418-555-0003", Score: 60},
		{Name: "Barbus", Code: "TEAM04", Captain: "Karen Bouchard", Email: "sadio.simaga@facebook.com", Phone: "418-555-0004", Score: 59},
		{Name: "Chiens de Brosse", Code: "TEAM05", Captain: "Sylvain Giroux", Email: "girouxsly@facebook.com", Phone: "418-555-0005", Score: 59},
	}
	for i := range teams {
		if err := s.CreateTeam(&teams[i]); err != nil {
			return err
		}
	}

	challenges := []models.Challenge{
		{Name: "Départ – RPM Harley-Davidson", Description: "Photo de départ devant RPM H-D", CoordsLat: "48.4175", CoordsLng: "-71.0591", Type: models.ChallengeTypeTask, Points: 10},
		{Name: "Cornhole – Roco Bar", Description: "Lancer de poches chez Pascal au Roco", CoordsLat: "48.4305", CoordsLng: "-71.0568", Type: models.ChallengeTypeTask, Points: 15},
		{Name: "Cerceau – A&W Arvida", Description: "Défi du cerceau synchronisé", CoordsLat: "48.4128", CoordsLng: "-71.0662", Type: models.ChallengeTypeTask, Points: 20},
		{Name: "Photo officielle – Mont Jacob", Description: "Votre plus beau sourire officiel avec le photographe", CoordsLat: "48.4299", CoordsLng: "-71.0577", Type: models.ChallengeTypePhoto, Points: 10},
		{Name: "Yoga Ball – Gym", Description: "Défi d'équilibre et de folie", CoordsLat: "48.4201", CoordsLng: "-71.0499", Type: models.ChallengeTypeTask, Points: 15},
		{Name: "Plage – Jonquière", Description: "Photo originale sur le sable", CoordsLat: "48.4165", CoordsLng: "-71.0300", Type: models.ChallengeTypePhoto, Points: 12},
	}
	for i := range challenges {
		if err := s.CreateChallenge(&challenges[i]); err != nil {
			return err
		}
	}

	return nil
}

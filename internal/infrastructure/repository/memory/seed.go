package memory

import (
	"github.com/armando-couceiro/team-balance/internal/domain/folder"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
)

// Seed fixtures shared by service tests.

func SeedPlayers() []player.Player {
	return []player.Player{
		{Name: "Tano", Skills: player.Skills{Speed: 8, Defense: 8, Passing: 8, Dribbling: 8, ShotPower: 8}, IsOwner: true},
		{Name: "Pipa", Skills: player.Skills{Speed: 7, Defense: 7, Passing: 7, Dribbling: 7, ShotPower: 7}},
		{Name: "Colo", Skills: player.Skills{Speed: 6, Defense: 6, Passing: 6, Dribbling: 6, ShotPower: 6}},
		{Name: "Chino", Skills: player.Skills{Speed: 5, Defense: 5, Passing: 5, Dribbling: 5, ShotPower: 5}},
		{Name: "Ruso", Skills: player.Skills{Speed: 4, Defense: 9, Passing: 5, Dribbling: 3, ShotPower: 4}},
		{Name: "Flaco", Skills: player.Skills{Speed: 9, Defense: 3, Passing: 6, Dribbling: 8, ShotPower: 9}},
		{Name: "Turco", Skills: player.Skills{Speed: 5, Defense: 4, Passing: 8, Dribbling: 6, ShotPower: 5}},
		{Name: "Negro", Skills: player.Skills{Speed: 6, Defense: 5, Passing: 5, Dribbling: 4, ShotPower: 6}},
	}
}

func SeedFolders() []folder.Folder {
	return []folder.Folder{
		{Name: "Martes", Players: []player.ID{"Tano", "Pipa", "Colo", "Chino"}},
		{Name: "Sábado", Players: []player.ID{"Tano", "Ruso", "Flaco", "Turco", "Negro"}},
	}
}

func SeedSavedTeams() []savedteam.SavedTeam {
	return []savedteam.SavedTeam{
		{ID: 1700000000001, Name: "Los Pibes", Color: "#ffd700", PlayerNames: []player.ID{"Tano", "Pipa"}},
		{ID: 1700000000002, Name: "La Vieja Escuela", Color: "#e63946", PlayerNames: []player.ID{"Colo", "Chino"}},
	}
}

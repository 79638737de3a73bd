package fallback

import "github.com/paris-green-explorer/internal/domain"

// GreenSpaces - выборка крупных зеленых зон Парижа
func GreenSpaces() []domain.GreenSpace {
	return []domain.GreenSpace{
		{ID: "ev1", Name: "Jardin des Tuileries", Parent: domain.ParentRef{ID: "q3", Name: "Palais-Royal"}, Type: "Jardin", Address: "Place de la Concorde", Area: area(254000), Hours: "7h-21h"},
		{ID: "ev2", Name: "Jardin du Palais Royal", Parent: domain.ParentRef{ID: "q3", Name: "Palais-Royal"}, Type: "Jardin", Address: "8 Rue de Montpensier", Area: area(20850), Hours: "8h-20h30"},
		{ID: "ev3", Name: "Square du Vert-Galant", Parent: domain.ParentRef{ID: "q16", Name: "Notre-Dame"}, Type: "Square", Address: "Place du Pont Neuf", Area: area(2000), Hours: "24h/24"},
		{ID: "ev4", Name: "Jardin des Plantes", Parent: domain.ParentRef{ID: "q18", Name: "Jardin des Plantes"}, Type: "Jardin", Address: "57 Rue Cuvier", Area: area(235000), Hours: "7h30-20h"},
		{ID: "ev5", Name: "Arènes de Lutèce", Parent: domain.ParentRef{ID: "q17", Name: "Saint-Victor"}, Type: "Square", Address: "49 Rue Monge", Area: area(5500), Hours: "8h-21h"},
		{ID: "ev6", Name: "Jardin du Luxembourg", Parent: domain.ParentRef{ID: "q23", Name: "Notre-Dame-des-Champs"}, Type: "Jardin", Address: "Rue de Médicis", Area: area(224500), Hours: "7h30-21h30"},
		{ID: "ev7", Name: "Champ de Mars", Parent: domain.ParentRef{ID: "q27", Name: "École Militaire"}, Type: "Parc", Address: "Quai Branly", Area: area(248000), Hours: "24h/24"},
		{ID: "ev8", Name: "Esplanade des Invalides", Parent: domain.ParentRef{ID: "q26", Name: "Invalides"}, Type: "Esplanade", Address: "Esplanade des Invalides", Area: area(50000), Hours: "24h/24"},
		{ID: "ev9", Name: "Parc Monceau", Parent: domain.ParentRef{ID: "q32", Name: "Europe"}, Type: "Parc", Address: "35 Boulevard de Courcelles", Area: area(82500), Hours: "7h-22h"},
		{ID: "ev10", Name: "Square Maurice Gardette", Parent: domain.ParentRef{ID: "q42", Name: "Saint-Ambroise"}, Type: "Square", Address: "2 Rue du Général Blaise", Area: area(8300), Hours: "8h-20h"},
		{ID: "ev11", Name: "Bois de Vincennes", Parent: domain.ParentRef{ID: "q45", Name: "Bel-Air"}, Type: "Bois", Address: "Route de la Pyramide", Area: area(9950000), Hours: "24h/24"},
		{ID: "ev12", Name: "Parc de Bercy", Parent: domain.ParentRef{ID: "q47", Name: "Bercy"}, Type: "Parc", Address: "128 Quai de Bercy", Area: area(140000), Hours: "8h-21h"},
		{ID: "ev13", Name: "Coulée Verte René-Dumont", Parent: domain.ParentRef{ID: "q45", Name: "Bel-Air"}, Type: "Promenade", Address: "1 Coulée Verte René-Dumont", Area: area(65000), Hours: "8h-21h"},
		{ID: "ev14", Name: "Parc Montsouris", Parent: domain.ParentRef{ID: "q54", Name: "Parc de Montsouris"}, Type: "Parc", Address: "2 Rue Gazan", Area: area(155000), Hours: "7h-21h"},
		{ID: "ev15", Name: "Bois de Boulogne", Parent: domain.ParentRef{ID: "q63", Name: "Porte Dauphine"}, Type: "Bois", Address: "Route de Suresnes", Area: area(8460000), Hours: "24h/24"},
		{ID: "ev16", Name: "Jardin du Ranelagh", Parent: domain.ParentRef{ID: "q62", Name: "Muette"}, Type: "Jardin", Address: "Avenue du Ranelagh", Area: area(60000), Hours: "8h-21h"},
		{ID: "ev17", Name: "Square des Batignolles", Parent: domain.ParentRef{ID: "q67", Name: "Batignolles"}, Type: "Square", Address: "147 Rue Cardinet", Area: area(16800), Hours: "8h-20h"},
		{ID: "ev18", Name: "Square Louise Michel", Parent: domain.ParentRef{ID: "q69", Name: "Grandes-Carrières"}, Type: "Square", Address: "Place Saint-Pierre", Area: area(5000), Hours: "8h-21h"},
		{ID: "ev19", Name: "Parc des Buttes-Chaumont", Parent: domain.ParentRef{ID: "q76", Name: "Combat"}, Type: "Parc", Address: "1 Rue Botzaris", Area: area(247000), Hours: "7h-22h"},
		{ID: "ev20", Name: "Parc de la Villette", Parent: domain.ParentRef{ID: "q73", Name: "Villette"}, Type: "Parc", Address: "211 Avenue Jean Jaurès", Area: area(550000), Hours: "24h/24"},
		{ID: "ev21", Name: "Cimetière du Père-Lachaise", Parent: domain.ParentRef{ID: "q79", Name: "Père-Lachaise"}, Type: "Cimetière paysager", Address: "16 Rue du Repos", Area: area(440000), Hours: "8h-18h"},
		{ID: "ev22", Name: "Parc de Belleville", Parent: domain.ParentRef{ID: "q77", Name: "Belleville"}, Type: "Parc", Address: "47 Rue des Couronnes", Area: area(45000), Hours: "7h30-21h"},
	}
}

func area(v float64) *float64 { return &v }

package fallback

import "github.com/paris-green-explorer/internal/domain"

// Districts - 80 кварталов, по четыре на округ
func Districts() []domain.District {
	return []domain.District{
		{ID: "q1", Name: "Saint-Germain-l'Auxerrois", Parent: domain.ParentRef{ID: "1", Name: "1er Arrondissement"}},
		{ID: "q2", Name: "Halles", Parent: domain.ParentRef{ID: "1", Name: "1er Arrondissement"}},
		{ID: "q3", Name: "Palais-Royal", Parent: domain.ParentRef{ID: "1", Name: "1er Arrondissement"}},
		{ID: "q4", Name: "Place Vendôme", Parent: domain.ParentRef{ID: "1", Name: "1er Arrondissement"}},
		{ID: "q5", Name: "Gaillon", Parent: domain.ParentRef{ID: "2", Name: "2ème Arrondissement"}},
		{ID: "q6", Name: "Vivienne", Parent: domain.ParentRef{ID: "2", Name: "2ème Arrondissement"}},
		{ID: "q7", Name: "Mail", Parent: domain.ParentRef{ID: "2", Name: "2ème Arrondissement"}},
		{ID: "q8", Name: "Bonne-Nouvelle", Parent: domain.ParentRef{ID: "2", Name: "2ème Arrondissement"}},
		{ID: "q9", Name: "Arts-et-Métiers", Parent: domain.ParentRef{ID: "3", Name: "3ème Arrondissement"}},
		{ID: "q10", Name: "Enfants-Rouges", Parent: domain.ParentRef{ID: "3", Name: "3ème Arrondissement"}},
		{ID: "q11", Name: "Archives", Parent: domain.ParentRef{ID: "3", Name: "3ème Arrondissement"}},
		{ID: "q12", Name: "Sainte-Avoye", Parent: domain.ParentRef{ID: "3", Name: "3ème Arrondissement"}},
		{ID: "q13", Name: "Saint-Merri", Parent: domain.ParentRef{ID: "4", Name: "4ème Arrondissement"}},
		{ID: "q14", Name: "Saint-Gervais", Parent: domain.ParentRef{ID: "4", Name: "4ème Arrondissement"}},
		{ID: "q15", Name: "Arsenal", Parent: domain.ParentRef{ID: "4", Name: "4ème Arrondissement"}},
		{ID: "q16", Name: "Notre-Dame", Parent: domain.ParentRef{ID: "4", Name: "4ème Arrondissement"}},
		{ID: "q17", Name: "Saint-Victor", Parent: domain.ParentRef{ID: "5", Name: "5ème Arrondissement"}},
		{ID: "q18", Name: "Jardin des Plantes", Parent: domain.ParentRef{ID: "5", Name: "5ème Arrondissement"}},
		{ID: "q19", Name: "Val-de-Grâce", Parent: domain.ParentRef{ID: "5", Name: "5ème Arrondissement"}},
		{ID: "q20", Name: "Sorbonne", Parent: domain.ParentRef{ID: "5", Name: "5ème Arrondissement"}},
		{ID: "q21", Name: "Monnaie", Parent: domain.ParentRef{ID: "6", Name: "6ème Arrondissement"}},
		{ID: "q22", Name: "Odéon", Parent: domain.ParentRef{ID: "6", Name: "6ème Arrondissement"}},
		{ID: "q23", Name: "Notre-Dame-des-Champs", Parent: domain.ParentRef{ID: "6", Name: "6ème Arrondissement"}},
		{ID: "q24", Name: "Saint-Germain-des-Prés", Parent: domain.ParentRef{ID: "6", Name: "6ème Arrondissement"}},
		{ID: "q25", Name: "Saint-Thomas-d'Aquin", Parent: domain.ParentRef{ID: "7", Name: "7ème Arrondissement"}},
		{ID: "q26", Name: "Invalides", Parent: domain.ParentRef{ID: "7", Name: "7ème Arrondissement"}},
		{ID: "q27", Name: "École Militaire", Parent: domain.ParentRef{ID: "7", Name: "7ème Arrondissement"}},
		{ID: "q28", Name: "Gros-Caillou", Parent: domain.ParentRef{ID: "7", Name: "7ème Arrondissement"}},
		{ID: "q29", Name: "Champs-Élysées", Parent: domain.ParentRef{ID: "8", Name: "8ème Arrondissement"}},
		{ID: "q30", Name: "Faubourg du Roule", Parent: domain.ParentRef{ID: "8", Name: "8ème Arrondissement"}},
		{ID: "q31", Name: "Madeleine", Parent: domain.ParentRef{ID: "8", Name: "8ème Arrondissement"}},
		{ID: "q32", Name: "Europe", Parent: domain.ParentRef{ID: "8", Name: "8ème Arrondissement"}},
		{ID: "q33", Name: "Saint-Georges", Parent: domain.ParentRef{ID: "9", Name: "9ème Arrondissement"}},
		{ID: "q34", Name: "Chaussée-d'Antin", Parent: domain.ParentRef{ID: "9", Name: "9ème Arrondissement"}},
		{ID: "q35", Name: "Faubourg Montmartre", Parent: domain.ParentRef{ID: "9", Name: "9ème Arrondissement"}},
		{ID: "q36", Name: "Rochechouart", Parent: domain.ParentRef{ID: "9", Name: "9ème Arrondissement"}},
		{ID: "q37", Name: "Saint-Vincent-de-Paul", Parent: domain.ParentRef{ID: "10", Name: "10ème Arrondissement"}},
		{ID: "q38", Name: "Porte Saint-Denis", Parent: domain.ParentRef{ID: "10", Name: "10ème Arrondissement"}},
		{ID: "q39", Name: "Porte Saint-Martin", Parent: domain.ParentRef{ID: "10", Name: "10ème Arrondissement"}},
		{ID: "q40", Name: "Hôpital Saint-Louis", Parent: domain.ParentRef{ID: "10", Name: "10ème Arrondissement"}},
		{ID: "q41", Name: "Folie-Méricourt", Parent: domain.ParentRef{ID: "11", Name: "11ème Arrondissement"}},
		{ID: "q42", Name: "Saint-Ambroise", Parent: domain.ParentRef{ID: "11", Name: "11ème Arrondissement"}},
		{ID: "q43", Name: "Roquette", Parent: domain.ParentRef{ID: "11", Name: "11ème Arrondissement"}},
		{ID: "q44", Name: "Sainte-Marguerite", Parent: domain.ParentRef{ID: "11", Name: "11ème Arrondissement"}},
		{ID: "q45", Name: "Bel-Air", Parent: domain.ParentRef{ID: "12", Name: "12ème Arrondissement"}},
		{ID: "q46", Name: "Picpus", Parent: domain.ParentRef{ID: "12", Name: "12ème Arrondissement"}},
		{ID: "q47", Name: "Bercy", Parent: domain.ParentRef{ID: "12", Name: "12ème Arrondissement"}},
		{ID: "q48", Name: "Quinze-Vingts", Parent: domain.ParentRef{ID: "12", Name: "12ème Arrondissement"}},
		{ID: "q49", Name: "Salpêtrière", Parent: domain.ParentRef{ID: "13", Name: "13ème Arrondissement"}},
		{ID: "q50", Name: "Gare", Parent: domain.ParentRef{ID: "13", Name: "13ème Arrondissement"}},
		{ID: "q51", Name: "Maison-Blanche", Parent: domain.ParentRef{ID: "13", Name: "13ème Arrondissement"}},
		{ID: "q52", Name: "Croulebarbe", Parent: domain.ParentRef{ID: "13", Name: "13ème Arrondissement"}},
		{ID: "q53", Name: "Montparnasse", Parent: domain.ParentRef{ID: "14", Name: "14ème Arrondissement"}},
		{ID: "q54", Name: "Parc de Montsouris", Parent: domain.ParentRef{ID: "14", Name: "14ème Arrondissement"}},
		{ID: "q55", Name: "Petit-Montrouge", Parent: domain.ParentRef{ID: "14", Name: "14ème Arrondissement"}},
		{ID: "q56", Name: "Plaisance", Parent: domain.ParentRef{ID: "14", Name: "14ème Arrondissement"}},
		{ID: "q57", Name: "Saint-Lambert", Parent: domain.ParentRef{ID: "15", Name: "15ème Arrondissement"}},
		{ID: "q58", Name: "Necker", Parent: domain.ParentRef{ID: "15", Name: "15ème Arrondissement"}},
		{ID: "q59", Name: "Grenelle", Parent: domain.ParentRef{ID: "15", Name: "15ème Arrondissement"}},
		{ID: "q60", Name: "Javel", Parent: domain.ParentRef{ID: "15", Name: "15ème Arrondissement"}},
		{ID: "q61", Name: "Auteuil", Parent: domain.ParentRef{ID: "16", Name: "16ème Arrondissement"}},
		{ID: "q62", Name: "Muette", Parent: domain.ParentRef{ID: "16", Name: "16ème Arrondissement"}},
		{ID: "q63", Name: "Porte Dauphine", Parent: domain.ParentRef{ID: "16", Name: "16ème Arrondissement"}},
		{ID: "q64", Name: "Chaillot", Parent: domain.ParentRef{ID: "16", Name: "16ème Arrondissement"}},
		{ID: "q65", Name: "Ternes", Parent: domain.ParentRef{ID: "17", Name: "17ème Arrondissement"}},
		{ID: "q66", Name: "Plaine de Monceaux", Parent: domain.ParentRef{ID: "17", Name: "17ème Arrondissement"}},
		{ID: "q67", Name: "Batignolles", Parent: domain.ParentRef{ID: "17", Name: "17ème Arrondissement"}},
		{ID: "q68", Name: "Épinettes", Parent: domain.ParentRef{ID: "17", Name: "17ème Arrondissement"}},
		{ID: "q69", Name: "Grandes-Carrières", Parent: domain.ParentRef{ID: "18", Name: "18ème Arrondissement"}},
		{ID: "q70", Name: "Clignancourt", Parent: domain.ParentRef{ID: "18", Name: "18ème Arrondissement"}},
		{ID: "q71", Name: "Goutte-d'Or", Parent: domain.ParentRef{ID: "18", Name: "18ème Arrondissement"}},
		{ID: "q72", Name: "Chapelle", Parent: domain.ParentRef{ID: "18", Name: "18ème Arrondissement"}},
		{ID: "q73", Name: "Villette", Parent: domain.ParentRef{ID: "19", Name: "19ème Arrondissement"}},
		{ID: "q74", Name: "Pont-de-Flandre", Parent: domain.ParentRef{ID: "19", Name: "19ème Arrondissement"}},
		{ID: "q75", Name: "Amérique", Parent: domain.ParentRef{ID: "19", Name: "19ème Arrondissement"}},
		{ID: "q76", Name: "Combat", Parent: domain.ParentRef{ID: "19", Name: "19ème Arrondissement"}},
		{ID: "q77", Name: "Belleville", Parent: domain.ParentRef{ID: "20", Name: "20ème Arrondissement"}},
		{ID: "q78", Name: "Saint-Fargeau", Parent: domain.ParentRef{ID: "20", Name: "20ème Arrondissement"}},
		{ID: "q79", Name: "Père-Lachaise", Parent: domain.ParentRef{ID: "20", Name: "20ème Arrondissement"}},
		{ID: "q80", Name: "Charonne", Parent: domain.ParentRef{ID: "20", Name: "20ème Arrondissement"}},
	}
}

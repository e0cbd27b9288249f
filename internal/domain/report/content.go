package report

import (
	"github.com/nutricancer/nutricancer/internal/domain/assessment"
)

var undernourishedObjectives = []string{
	"Augmenter l'apport calorique quotidien pour atteindre un poids santé.",
	"Privilégier les repas riches en calories et en protéines.",
	"Fractionner l'alimentation (6-8 petits repas par jour).",
	"Enrichir les plats (fromage râpé, œuf, crème, huile, etc.).",
	"Utiliser des compléments nutritionnels oraux si nécessaire.",
}

var normalObjectives = []string{
	"Maintenir l'apport calorique actuel.",
	"Assurer un apport protéique suffisant.",
	"Privilégier une alimentation équilibrée et variée.",
	"Rester hydraté (au moins 1,5L d'eau par jour).",
}

var overweightObjectives = []string{
	"Réduire progressivement l'apport calorique sans restriction sévère.",
	"Maintenir un apport protéique adéquat.",
	"Favoriser les aliments à haute densité nutritionnelle.",
	"Augmenter progressivement l'activité physique si possible.",
}

// symptomOrder is the order advice blocks appear in the report.
var symptomOrder = []assessment.Symptom{
	assessment.SymptomDiarrhea,
	assessment.SymptomNauseaVomiting,
	assessment.SymptomDryMouth,
	assessment.SymptomConstipation,
	assessment.SymptomAbdominalPain,
}

var symptomAdvice = map[assessment.Symptom][]string{
	assessment.SymptomDiarrhea: {
		"Privilégier les aliments pauvres en fibres (riz blanc, pâtes, pain blanc).",
		"Éviter les aliments gras, épicés et les produits laitiers.",
		"Boire beaucoup pour éviter la déshydratation (bouillons, eau, boissons isotoniques).",
	},
	assessment.SymptomNauseaVomiting: {
		"Prendre des repas plus petits mais plus fréquents.",
		"Éviter les aliments à forte odeur ou très épicés.",
		"Privilégier les aliments froids ou à température ambiante.",
		"Boire entre les repas plutôt que pendant les repas.",
	},
	assessment.SymptomDryMouth: {
		"Ajouter des sauces, des bouillons ou des jus aux aliments.",
		"Boire régulièrement de petites gorgées d'eau.",
		"Utiliser des substituts de salive si recommandé.",
	},
	assessment.SymptomConstipation: {
		"Augmenter progressivement l'apport en fibres (fruits, légumes, céréales complètes).",
		"Boire suffisamment d'eau.",
		"Pratiquer une activité physique modérée si possible.",
	},
	assessment.SymptomAbdominalPain: {
		"Éviter les aliments produisant des gaz (choux, légumineuses, boissons gazeuses).",
		"Privilégier les aliments faciles à digérer.",
		"Manger lentement et bien mastiquer.",
	},
}

var cancerAdvice = map[assessment.CancerType][]string{
	assessment.CancerColorectal: {
		"Privilégier une alimentation riche en protéines et modérée en fibres selon tolérance.",
		"Éviter les aliments irritants en cas de diarrhée ou de selles fréquentes.",
		"Fractionner les repas pour faciliter la digestion.",
	},
	assessment.CancerPancreas: {
		"Suivre un régime pauvre en graisses si prescrit.",
		"Prendre les suppléments d'enzymes pancréatiques si prescrits.",
		"Fractionner l'alimentation en petits repas fréquents pour faciliter la digestion.",
	},
	assessment.CancerGastric: {
		"Privilégier les petits repas fréquents pour éviter la distension gastrique.",
		"Manger lentement et bien mastiquer.",
		"Éviter les aliments irritants et acides.",
	},
	assessment.CancerRectum: {
		"Adapter l'apport en fibres selon les symptômes intestinaux.",
		"Éviter les aliments qui aggravent les symptômes digestifs.",
		"Boire suffisamment d'eau pour maintenir des selles régulières.",
	},
	assessment.CancerStomach: {
		"Privilégier les petits repas fréquents (6-8 par jour).",
		"Éviter les aliments épicés, acides et irritants.",
		"Rester assis pendant au moins 30 minutes après les repas.",
	},
}

var disclaimer = []string{
	"Ce rapport est généré automatiquement à partir des données fournies par l'utilisateur.",
	"Il ne remplace pas l'avis d'un professionnel de santé qualifié.",
	"NutriCancer - Application de soutien nutritionnel pour patients atteints de cancer digestif",
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

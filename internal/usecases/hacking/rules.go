package hacking

import (
	"fmt"
	"math"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

const (
	fullShippingCap       = 35
	categoryAdjustmentCap = 40

	freeShippingThreshold = 79.0
	minPsychologicalPrice = 20.0
	higherImpactScore     = 70
)

// gateDecision: omit nunca sugere; capAt > 0 sugere com teto de pontuação
type gateDecision struct {
	omit   bool
	capAt  int
	reason string
}

var open = gateDecision{}

// rule descreve um hack: portão, pontuação e apresentação
type rule struct {
	id      domain.HackID
	title   string
	summary func(s *domain.Signals) string
	gate    func(s *domain.Signals) gateDecision
	score   func(s *domain.Signals) *scorecard
	impact  func(score int) domain.Level
}

// defaultRules mantém a ordem fixa de avaliação
var defaultRules = []rule{
	fullShippingRule,
	bundleKitRule,
	smartVariationsRule,
	categoryAdjustmentRule,
	psychologicalPricingRule,
}

func fixedImpact(level domain.Level) func(int) domain.Level {
	return func(int) domain.Level { return level }
}

func thresholdImpact(above, below domain.Level) func(int) domain.Level {
	return func(score int) domain.Level {
		if score >= higherImpactScore {
			return above
		}
		return below
	}
}

func noGate(*domain.Signals) gateDecision {
	return open
}

func noteCommon(c *scorecard, s *domain.Signals) {
	if s.Visits != nil {
		c.note("Visitas (30d): %d", *s.Visits)
	}
	if s.ConversionRate != nil {
		c.note("Conversão (30d): %s", formatPercent(*s.ConversionRate))
	}
}

var fullShippingRule = rule{
	id:    domain.HackFullShipping,
	title: "Ative o Mercado Envios Full",
	summary: func(*domain.Signals) string {
		return "Armazenar o estoque no Full acelera a entrega e melhora a exposição do anúncio."
	},
	gate: func(s *domain.Signals) gateDecision {
		if s.ShippingMode == domain.ShippingModeFull {
			return gateDecision{omit: true, reason: "Anúncio já utiliza o Full."}
		}
		if s.IsFullEligible.IsFalse() {
			return gateDecision{capAt: fullShippingCap, reason: "Anúncio ainda não é elegível ao Full; verifique os requisitos."}
		}
		return open
	},
	score: func(s *domain.Signals) *scorecard {
		c := newScorecard(30)

		if s.Visits != nil {
			switch visits := *s.Visits; {
			case visits >= 500:
				c.add(20, "Alto volume de visitas: entrega mais rápida converte mais tráfego.")
			case visits >= 100:
				c.add(10, "Volume de visitas relevante para se beneficiar de entrega rápida.")
			case visits < 30:
				c.add(-10, "")
			}
		}

		if s.ConversionRate != nil {
			switch rate := *s.ConversionRate; {
			case rate >= 0.02:
				c.add(15, "Demanda comprovada pela conversão acima de 2%.")
			case rate >= 0.01:
				c.add(10, "Conversão acima de 1% indica demanda consistente.")
			}
		}

		switch s.ShippingMode {
		case domain.ShippingModeME2:
			c.add(10, "Envio atual pelo Mercado Envios tradicional pode ganhar velocidade no Full.")
		case domain.ShippingModeFlex:
			c.add(5, "Envio Flex depende de coleta própria; o Full amplia a cobertura.")
		}

		if s.AvailableQuantity != nil {
			switch stock := *s.AvailableQuantity; {
			case stock >= 10:
				c.add(10, "Estoque suficiente para enviar ao centro de distribuição.")
			case stock < 3:
				c.add(-15, "")
			}
			c.note("Estoque disponível: %d", *s.AvailableQuantity)
		}

		switch {
		case s.Price >= freeShippingThreshold:
			c.add(10, "Preço acima do limite de frete grátis valoriza a entrega rápida.")
		case s.Price < 20:
			c.add(-10, "")
		}

		if !s.IsFreeShipping {
			c.add(5, "Anúncio sem frete grátis.")
		}

		noteCommon(c, s)
		c.note("Modo de envio: %s", s.ShippingMode)
		c.note("Elegível ao Full: %s", s.IsFullEligible)

		return c
	},
	impact: fixedImpact(domain.LevelHigh),
}

var bundleKitRule = rule{
	id:    domain.HackBundleKit,
	title: "Crie um kit ou combo",
	summary: func(*domain.Signals) string {
		return "Oferecer o produto em kit aumenta o ticket médio e diferencia o anúncio da concorrência."
	},
	gate: func(s *domain.Signals) gateDecision {
		if s.IsKitHeuristic {
			return gateDecision{omit: true, reason: "Anúncio já parece ser um kit."}
		}
		return open
	},
	score: func(s *domain.Signals) *scorecard {
		c := newScorecard(20)

		if s.Visits != nil {
			switch visits := *s.Visits; {
			case visits >= 300:
				c.add(20, "Tráfego alto para testar uma oferta em kit.")
			case visits >= 100:
				c.add(10, "Tráfego suficiente para testar uma oferta em kit.")
			case visits < 50:
				c.add(-10, "")
			}
		}

		if s.ConversionRate != nil {
			switch rate := *s.ConversionRate; {
			case rate >= 0.03:
				c.add(-15, "")
			case rate < 0.01:
				c.add(10, "Conversão abaixo de 1%: um kit pode aumentar o valor percebido.")
			}
		}

		switch {
		case s.Price <= 0:
		case s.Price < 50:
			c.add(15, "Ticket baixo favorece a venda em kit.")
		case s.Price <= 150:
			c.add(5, "Ticket intermediário comporta kits de 2 a 3 unidades.")
		case s.Price > 300:
			c.add(-10, "")
		}

		if s.AvailableQuantity != nil {
			switch stock := *s.AvailableQuantity; {
			case stock >= 20:
				c.add(10, "Estoque suficiente para montar kits.")
			case stock < 5:
				c.add(-20, "")
			}
			c.note("Estoque disponível: %d", *s.AvailableQuantity)
		}

		if s.VariationsCount >= 2 {
			c.add(10, "Variações existentes permitem combinar itens no kit.")
		}

		if s.DiscountPercent == nil || *s.DiscountPercent < 10 {
			c.add(5, "Sem desconto relevante ativo; o kit é uma alternativa ao desconto direto.")
		}

		if s.IsCatalog {
			c.add(-15, "")
			c.note("Anúncio participa do catálogo")
		}

		noteCommon(c, s)
		c.note("Preço: %s", formatBRL(s.Price))

		return c
	},
	impact: thresholdImpact(domain.LevelHigh, domain.LevelMedium),
}

// smartVariationsRule não tem portão: é sempre avaliável
var smartVariationsRule = rule{
	id:    domain.HackSmartVariations,
	title: "Use variações inteligentes",
	summary: func(*domain.Signals) string {
		return "Agrupar cores, tamanhos ou modelos em variações concentra visitas e avaliações num único anúncio."
	},
	gate: noGate,
	score: func(s *domain.Signals) *scorecard {
		c := newScorecard(25)

		if s.Visits != nil {
			switch visits := *s.Visits; {
			case visits >= 300:
				c.add(15, "Tráfego alto pode ser distribuído entre variações.")
			case visits >= 100:
				c.add(10, "Tráfego consistente para oferecer variações.")
			case visits < 30:
				c.add(-15, "")
			}
		}

		if s.ConversionRate != nil && *s.ConversionRate < 0.01 {
			c.add(10, "Conversão abaixo de 1%: o comprador pode não encontrar a opção desejada.")
		}

		switch {
		case s.VariationsCount == 0:
			c.add(20, "Anúncio sem variações.")
		case s.VariationsCount >= 5:
			c.add(-20, "")
		}
		c.note("Variações: %d", s.VariationsCount)

		if s.PicturesCount != nil {
			switch pictures := *s.PicturesCount; {
			case pictures >= 6:
				c.add(10, "Imagens suficientes para ilustrar cada variação.")
			case pictures < 3:
				c.add(-10, "")
			}
			c.note("Imagens: %d", *s.PicturesCount)
		}

		if s.HasCategory() {
			c.add(5, "Categoria definida permite atributos de variação.")
		}

		if s.AvailableQuantity != nil && *s.AvailableQuantity >= 10 {
			c.add(5, "Estoque permite distribuir unidades entre variações.")
		}

		noteCommon(c, s)

		return c
	},
	impact: fixedImpact(domain.LevelMedium),
}

var categoryAdjustmentRule = rule{
	id:    domain.HackCategoryAdjustment,
	title: "Revise a categoria do anúncio",
	summary: func(*domain.Signals) string {
		return "Uma categoria mais específica melhora a relevância na busca e a exibição nos filtros."
	},
	gate: func(s *domain.Signals) gateDecision {
		if !s.HasCategory() {
			return gateDecision{capAt: categoryAdjustmentCap, reason: "Anúncio sem categoria definida; defina a categoria antes de otimizar."}
		}
		return open
	},
	score: func(s *domain.Signals) *scorecard {
		c := newScorecard(20)

		switch {
		case s.Visits != nil && *s.Visits >= 200 && s.Orders != nil && *s.Orders == 0:
			c.add(25, "Muitas visitas sem pedidos: o anúncio pode estar atraindo o público errado.")
		case s.Visits != nil && *s.Visits >= 100 && s.ConversionRate != nil && *s.ConversionRate < 0.005:
			c.add(15, "Conversão abaixo de 0,5% com tráfego relevante.")
		}

		if depth := len(s.CategoryPath); depth >= 1 && depth <= 2 {
			c.add(15, "Categoria rasa; subcategorias mais específicas costumam ranquear melhor.")
			c.note("Profundidade da categoria: %d", depth)
		}

		if !s.IsCatalog {
			c.add(5, "Anúncio fora do catálogo pode escolher a categoria livremente.")
		}

		if b := s.Benchmark; b != nil && b.P25Price != nil && b.P75Price != nil {
			if s.Price >= *b.P25Price && s.Price <= *b.P75Price {
				c.add(10, "Preço dentro da faixa típica da categoria; o gargalo provavelmente não é preço.")
			}
			c.note("Faixa de preço da categoria: %s a %s", formatBRL(*b.P25Price), formatBRL(*b.P75Price))
		}

		if s.Orders != nil && *s.Orders >= 20 {
			c.add(-25, "")
		}

		if s.Visits != nil && *s.Visits < 50 {
			c.add(-15, "")
		}

		noteCommon(c, s)
		if s.Orders != nil {
			c.note("Pedidos (30d): %d", *s.Orders)
		}

		return c
	},
	impact: fixedImpact(domain.LevelMedium),
}

var psychologicalPricingRule = rule{
	id:    domain.HackPsychologicalPrice,
	title: "Aplique preço psicológico",
	summary: func(s *domain.Signals) string {
		return fmt.Sprintf("Ajustar o preço de %s para %s tende a aumentar a percepção de oferta.",
			formatBRL(s.Price), formatBRL(psychologicalPrice(s.Price)))
	},
	gate: func(s *domain.Signals) gateDecision {
		if s.Price < minPsychologicalPrice {
			return gateDecision{omit: true, reason: "Preço abaixo do mínimo para preço psicológico."}
		}
		switch priceCents(s.Price) {
		case 89, 90, 99:
			return gateDecision{omit: true, reason: "Preço já termina em final psicológico."}
		}
		return open
	},
	score: func(s *domain.Signals) *scorecard {
		c := newScorecard(30)

		if s.Visits != nil {
			switch visits := *s.Visits; {
			case visits >= 200:
				c.add(15, "Tráfego alto para perceber o efeito do preço psicológico.")
			case visits >= 50:
				c.add(5, "Tráfego moderado.")
			case visits < 30:
				c.add(-15, "")
			}
		}

		if s.ConversionRate != nil && *s.ConversionRate < 0.015 {
			c.add(10, "Conversão abaixo de 1,5%.")
		}

		if priceCents(s.Price) == 0 {
			c.add(15, "Preço redondo; finais ,90 são percebidos como mais baratos.")
		}

		if b := s.Benchmark; b != nil && b.MedianPrice != nil && *b.MedianPrice > 0 {
			median := *b.MedianPrice
			if math.Abs(s.Price-median)/median <= 0.10 {
				c.add(10, "Preço próximo da mediana da categoria; pequenos ajustes fazem diferença na comparação.")
			}
			c.note("Preço mediano da categoria: %s", formatBRL(*b.MedianPrice))
		}

		if !s.HasPromotion {
			c.add(10, "Sem promoção ativa.")
		}

		if s.DiscountPercent != nil && *s.DiscountPercent >= 30 {
			c.add(-15, "")
		}

		if s.Orders != nil && *s.Orders >= 50 {
			c.add(-20, "")
		}

		noteCommon(c, s)
		c.note("Preço atual: %s", formatBRL(s.Price))
		c.note("Preço sugerido: %s", formatBRL(psychologicalPrice(s.Price)))

		return c
	},
	impact: thresholdImpact(domain.LevelMedium, domain.LevelLow),
}

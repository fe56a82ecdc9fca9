package services

import (
	"log"
	"sync"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
)

// AlertRepositoryInterface define las operaciones que necesitamos del repositorio de alertas
type AlertRepositoryInterface interface {
	GetPendingAlerts() ([]models.PriceAlert, error)
	MarkTriggered(alertID string) error
}

// PriceSourceInterface define la fuente de precios actuales
type PriceSourceInterface interface {
	GetSimplePrices(ids []string, currency string) (map[string]float64, error)
}

// AlertChecker es un servicio que evalúa periódicamente las alertas de precio
// contra los precios actuales del mercado. Una alerta disparada queda en
// triggered=true y no vuelve atrás aunque el precio se mueva de nuevo.
type AlertChecker struct {
	interval    time.Duration
	alertRepo   AlertRepositoryInterface
	priceSource PriceSourceInterface
	isRunning   bool
	stopChan    chan struct{}
	mutex       sync.Mutex
}

// NewAlertChecker crea un nuevo verificador de alertas
func NewAlertChecker(interval time.Duration, alertRepo AlertRepositoryInterface, priceSource PriceSourceInterface) *AlertChecker {
	return &AlertChecker{
		interval:    interval,
		alertRepo:   alertRepo,
		priceSource: priceSource,
		isRunning:   false,
		stopChan:    make(chan struct{}),
	}
}

// Start inicia el ciclo de verificación en segundo plano
func (ac *AlertChecker) Start() {
	ac.mutex.Lock()
	defer ac.mutex.Unlock()

	if ac.isRunning {
		return
	}

	ac.isRunning = true
	ac.stopChan = make(chan struct{})
	go ac.run(ac.stopChan)
	log.Printf("Verificador de alertas iniciado (intervalo: %v)", ac.interval)
}

// Stop detiene el ciclo de verificación
func (ac *AlertChecker) Stop() {
	ac.mutex.Lock()
	defer ac.mutex.Unlock()

	if !ac.isRunning {
		return
	}

	ac.isRunning = false
	close(ac.stopChan)
}

// run recibe su propio canal de parada: un Stop/Start posterior crea un canal
// nuevo y este ciclo solo responde al suyo.
func (ac *AlertChecker) run(stop chan struct{}) {
	ticker := time.NewTicker(ac.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := ac.CheckAlerts(); err != nil {
				// Un ciclo fallido no es fatal; se reintenta en el próximo tick
				log.Printf("Error verificando alertas: %v", err)
			}
		case <-stop:
			log.Println("Verificador de alertas detenido")
			return
		}
	}
}

// alertCurrency normaliza la moneda en que se evalúa una alerta.
func alertCurrency(a models.PriceAlert) string {
	if models.IsValidCurrency(a.VsCurrency) {
		return a.VsCurrency
	}
	return models.DefaultCurrency
}

// CheckAlerts ejecuta un ciclo de evaluación: carga las alertas pendientes,
// obtiene los precios actuales con una llamada por moneda de visualización y
// marca las que cruzaron su umbral. Cada alerta se compara en la moneda
// preferida de su dueño, la misma en que se ingresó el precio objetivo.
func (ac *AlertChecker) CheckAlerts() error {
	alerts, err := ac.alertRepo.GetPendingAlerts()
	if err != nil {
		return err
	}

	if len(alerts) == 0 {
		return nil
	}

	// Juntar los ids de moneda sin duplicados, agrupados por moneda de cotización
	seen := make(map[string]bool)
	byCurrency := make(map[string][]string)
	for _, alert := range alerts {
		currency := alertCurrency(alert)
		key := currency + "|" + alert.CoinID
		if !seen[key] {
			seen[key] = true
			byCurrency[currency] = append(byCurrency[currency], alert.CoinID)
		}
	}

	prices := make(map[string]map[string]float64)
	for currency, coinIDs := range byCurrency {
		currencyPrices, err := ac.priceSource.GetSimplePrices(coinIDs, currency)
		if err != nil {
			// Una moneda sin precios no bloquea la evaluación de las demás
			log.Printf("Error obteniendo precios en %s: %v", currency, err)
			continue
		}
		prices[currency] = currencyPrices
	}

	for _, alert := range alerts {
		price, exists := prices[alertCurrency(alert)][alert.CoinID]
		if !exists {
			continue
		}

		if alert.ShouldTrigger(price) {
			if err := ac.alertRepo.MarkTriggered(alert.ID); err != nil {
				log.Printf("Error marcando alerta %s como disparada: %v", alert.ID, err)
				continue
			}
			log.Printf("Alerta disparada: %s %s %.2f (precio actual: %.2f)",
				alert.CoinID, alert.Condition, alert.TargetPrice, price)
		}
	}

	return nil
}

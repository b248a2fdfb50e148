package mqttpub

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/ingress-wunderground/internal/pkg/application/services/weather"
)

type deviceInfo struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Model        string   `json:"model"`
	Manufacturer string   `json:"manufacturer"`
}

type discoveryDocument struct {
	Name              string     `json:"name"`
	UniqueID          string     `json:"unique_id"`
	ObjectID          string     `json:"object_id"`
	StateTopic        string     `json:"state_topic"`
	DeviceClass       string     `json:"device_class,omitempty"`
	UnitOfMeasurement string     `json:"unit_of_measurement,omitempty"`
	StateClass        string     `json:"state_class,omitempty"`
	Icon              string     `json:"icon,omitempty"`
	Device            deviceInfo `json:"device"`
}

type sensorDescriptor struct {
	key         string
	name        string
	deviceClass string
	unit        string
	stateClass  string
	icon        string
}

// currentSensors describes the nine sensors derived from current
// conditions. State topics follow the scalar topic names 1:1.
var currentSensors = []sensorDescriptor{
	{key: "temperature", name: "WU Temperature", deviceClass: "temperature", unit: "°C", stateClass: "measurement"},
	{key: "feels_like", name: "WU Feels Like", deviceClass: "temperature", unit: "°C", stateClass: "measurement"},
	{key: "humidity", name: "WU Humidity", deviceClass: "humidity", unit: "%", stateClass: "measurement"},
	{key: "wind_speed", name: "WU Wind Speed", deviceClass: "wind_speed", unit: "km/h", stateClass: "measurement"},
	{key: "wind_direction", name: "WU Wind Direction", icon: "mdi:compass"},
	{key: "pressure", name: "WU Pressure", deviceClass: "pressure", unit: "hPa", stateClass: "measurement"},
	{key: "visibility", name: "WU Visibility", deviceClass: "distance", unit: "km", stateClass: "measurement"},
	{key: "uv_index", name: "WU UV Index", icon: "mdi:weather-sunny"},
	{key: "condition", name: "WU Condition", icon: "mdi:weather-partly-cloudy"},
}

var bridgeDevice = deviceInfo{
	Identifiers:  []string{appID},
	Name:         "WU MQTT Bridge",
	Model:        "wu-mqtt-bridge",
	Manufacturer: "wu-mqtt-bridge",
}

// discoveryMessages produces the per-sensor discovery documents followed by
// the cleanup of the legacy aggregate weather entity. Discovery is always
// retained, so late-joining HA instances still pick the entities up.
func (p *publisher) discoveryMessages(data *weathersvc.WeatherSnapshot) []message {
	messages := make([]message, 0, len(currentSensors)+3*len(data.HourlyToday)+1)

	for _, sensor := range currentSensors {
		messages = append(messages, p.sensorConfig(sensor, p.cfg.TopicPrefix+"/"+sensor.key))
	}

	for _, hour := range data.HourlyToday {
		stateBase := fmt.Sprintf("%s/hourly/%02d", p.cfg.TopicPrefix, hour.Hour)
		keyBase := fmt.Sprintf("hourly_%02d", hour.Hour)
		nameBase := fmt.Sprintf("WU %02dh", hour.Hour)

		messages = append(messages,
			p.sensorConfig(sensorDescriptor{
				key:         keyBase + "_temperature",
				name:        nameBase + " Temperature",
				deviceClass: "temperature",
				unit:        "°C",
				stateClass:  "measurement",
			}, stateBase+"/temperature"),
			p.sensorConfig(sensorDescriptor{
				key:  keyBase + "_condition",
				name: nameBase + " Condition",
				icon: "mdi:weather-partly-cloudy",
			}, stateBase+"/condition"),
			p.sensorConfig(sensorDescriptor{
				key:         keyBase + "_precipitation",
				name:        nameBase + " Precipitation",
				deviceClass: "precipitation",
				unit:        "mm",
				stateClass:  "measurement",
			}, stateBase+"/precipitation"),
		)
	}

	// Earlier versions registered one aggregate weather entity. Publishing
	// an empty retained payload on its config topic removes it from HA.
	legacyTopic := fmt.Sprintf("%s/weather/%s/config", p.cfg.HADiscoveryPrefix, appID)
	messages = append(messages, message{topic: legacyTopic, payload: []byte{}, retain: true})

	return messages
}

func (p *publisher) sensorConfig(sensor sensorDescriptor, stateTopic string) message {
	doc := discoveryDocument{
		Name:              sensor.name,
		UniqueID:          appID + "_" + sensor.key,
		ObjectID:          appID + "_" + sensor.key,
		StateTopic:        stateTopic,
		DeviceClass:       sensor.deviceClass,
		UnitOfMeasurement: sensor.unit,
		StateClass:        sensor.stateClass,
		Icon:              sensor.icon,
		Device:            bridgeDevice,
	}

	payload, _ := json.Marshal(doc)

	return message{
		topic:   fmt.Sprintf("%s/sensor/%s/%s/config", p.cfg.HADiscoveryPrefix, appID, sensor.key),
		payload: payload,
		retain:  true,
	}
}

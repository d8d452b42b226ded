package hldemo

func decodeNetMsg(r *reader) (FrameData, error) {
	var (
		d   NetMsgData
		err error
	)
	if d.Info, err = decodeNetMsgInfo(r); err != nil {
		return nil, err
	}
	seq := [...]*int32{
		&d.IncomingSequence,
		&d.IncomingAcknowledged,
		&d.IncomingReliableAcknowledged,
		&d.IncomingReliableSequence,
		&d.OutgoingSequence,
		&d.ReliableSequence,
		&d.LastReliableSequence,
	}
	for _, p := range seq {
		if *p, err = r.readI32(); err != nil {
			return nil, err
		}
	}
	if d.Msg, err = r.readBytes("network-message", MinMessageLength, MaxMessageLength); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeNetMsgInfo(r *reader) (NetMsgInfo, error) {
	var (
		info NetMsgInfo
		err  error
	)
	if info.Timestamp, err = r.readF32(); err != nil {
		return info, err
	}
	if info.RefParams, err = decodeRefParams(r); err != nil {
		return info, err
	}
	if info.UserCmd, err = decodeUserCmd(r); err != nil {
		return info, err
	}
	if info.MoveVars, err = decodeMoveVars(r); err != nil {
		return info, err
	}
	if info.View, err = r.readVec3(); err != nil {
		return info, err
	}
	if info.ViewModel, err = r.readI32(); err != nil {
		return info, err
	}
	return info, nil
}

// field is one step of a fixed record layout.
type field func(r *reader) error

func f32(p *float32) field {
	return func(r *reader) (err error) {
		*p, err = r.readF32()
		return err
	}
}

func i32(p *int32) field {
	return func(r *reader) (err error) {
		*p, err = r.readI32()
		return err
	}
}

func vec3(p *Vec3) field {
	return func(r *reader) (err error) {
		*p, err = r.readVec3()
		return err
	}
}

func pad(n int) field {
	return func(r *reader) error {
		return r.skip(n)
	}
}

func readFields(r *reader, fields ...field) error {
	for _, f := range fields {
		if err := f(r); err != nil {
			return err
		}
	}
	return nil
}

func decodeRefParams(r *reader) (RefParams, error) {
	var p RefParams
	err := readFields(r,
		vec3(&p.ViewOrg),
		vec3(&p.ViewAngles),
		vec3(&p.Forward),
		vec3(&p.Right),
		vec3(&p.Up),
		f32(&p.FrameTime),
		f32(&p.Time),
		i32(&p.Intermission),
		i32(&p.Paused),
		i32(&p.Spectator),
		i32(&p.OnGround),
		i32(&p.WaterLevel),
		vec3(&p.SimVel),
		vec3(&p.SimOrg),
		vec3(&p.ViewHeight),
		f32(&p.IdealPitch),
		vec3(&p.ClViewAngles),
		i32(&p.Health),
		vec3(&p.CrosshairAngle),
		f32(&p.ViewSize),
		vec3(&p.PunchAngle),
		i32(&p.MaxClients),
		i32(&p.ViewEntity),
		i32(&p.PlayerNum),
		i32(&p.MaxEntities),
		i32(&p.DemoPlayback),
		i32(&p.Hardware),
		i32(&p.Smoothing),
		i32(&p.PtrCmd),
		i32(&p.PtrMoveVars),
		func(r *reader) (err error) {
			p.Viewport, err = r.readI32x4()
			return err
		},
		i32(&p.NextView),
		i32(&p.OnlyClientDraw),
	)
	return p, err
}

func decodeUserCmd(r *reader) (UserCmd, error) {
	var c UserCmd
	err := readFields(r,
		func(r *reader) (err error) {
			c.LerpMsec, err = r.readI16()
			return err
		},
		func(r *reader) (err error) {
			c.Msec, err = r.readU8()
			return err
		},
		pad(1),
		vec3(&c.ViewAngles),
		f32(&c.ForwardMove),
		f32(&c.SideMove),
		f32(&c.UpMove),
		func(r *reader) (err error) {
			c.LightLevel, err = r.readI8()
			return err
		},
		pad(1),
		func(r *reader) (err error) {
			c.Buttons, err = r.readU16()
			return err
		},
		func(r *reader) (err error) {
			c.Impulse, err = r.readI8()
			return err
		},
		func(r *reader) (err error) {
			c.WeaponSelect, err = r.readI8()
			return err
		},
		pad(2),
		i32(&c.ImpactIndex),
		vec3(&c.ImpactPosition),
	)
	return c, err
}

func decodeMoveVars(r *reader) (MoveVars, error) {
	var m MoveVars
	err := readFields(r,
		f32(&m.Gravity),
		f32(&m.StopSpeed),
		f32(&m.MaxSpeed),
		f32(&m.SpectatorMaxSpeed),
		f32(&m.Accelerate),
		f32(&m.AirAccelerate),
		f32(&m.WaterAccelerate),
		f32(&m.Friction),
		f32(&m.EdgeFriction),
		f32(&m.WaterFriction),
		f32(&m.EntGravity),
		f32(&m.Bounce),
		f32(&m.StepSize),
		f32(&m.MaxVelocity),
		f32(&m.ZMax),
		f32(&m.WaveHeight),
		i32(&m.Footsteps),
		func(r *reader) (err error) {
			m.SkyName, err = r.readN(skyNameSize)
			return err
		},
		f32(&m.RollAngle),
		f32(&m.RollSpeed),
		f32(&m.SkyColorR),
		f32(&m.SkyColorG),
		f32(&m.SkyColorB),
		f32(&m.SkyVecX),
		f32(&m.SkyVecY),
		f32(&m.SkyVecZ),
	)
	return m, err
}
